package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/query"
	"github.com/cubhub/cubhub-web/internal/upstream"
)

// Submission status messages.
const (
	StatusListingAdded     = "Thanks! Your listing has been added."
	StatusProposalReceived = "Blog post submitted for review! It will appear after approval."
	StatusProposalFailed   = "Error submitting blog post. Please try again."
)

// ListingInput is the create-listing form as submitted.
type ListingInput struct {
	Title            string
	Category         string
	Subcategory      string
	Town             string
	About            string
	Website          string
	Email            string
	Phone            string
	Tags             string
	FeaturedImageURL string
	Flags            domain.ListingFlags
}

// ListingInputFromForm reads trimmed fields and checkbox flags.
func ListingInputFromForm(v form.Values) ListingInput {
	return ListingInput{
		Title:            v.Text("title"),
		Category:         v.Text("category"),
		Subcategory:      v.Text("subcategory"),
		Town:             v.Text("town"),
		About:            v.Text("about"),
		Website:          v.Text("website"),
		Email:            v.Text("email"),
		Phone:            v.Text("phone"),
		Tags:             v.Text("tags"),
		FeaturedImageURL: v.Text("featuredImageUrl"),
		Flags: domain.ListingFlags{
			DBS:      v.Checked(query.ParamDBS),
			FirstAid: v.Checked(query.ParamFirstAid),
			Ofsted:   v.Checked(query.ParamOfsted),
			SEN:      v.Checked(query.ParamSEN),
		},
	}
}

// Listing builds the payload: free-text tags first, then flag tags in fixed
// order.
func (in ListingInput) Listing() domain.Listing {
	tags := form.ParseTags(in.Tags)
	tags = append(tags, in.Flags.Tags()...)
	return domain.Listing{
		Title:            in.Title,
		Category:         in.Category,
		Subcategory:      in.Subcategory,
		Town:             in.Town,
		About:            in.About,
		Website:          in.Website,
		Email:            in.Email,
		Phone:            in.Phone,
		Tags:             tags,
		FeaturedImageURL: in.FeaturedImageURL,
	}
}

// ListingSubmission is the outcome of CreateListing.
type ListingSubmission struct {
	Status string
	Failed bool
	// Form is the input to re-render: retained on failure, cleared on success.
	Form ListingInput
	// Results holds the re-issued default query on success.
	Results *Result
}

// ProposalInput is the public article proposal form.
type ProposalInput struct {
	Title         string
	Author        string
	Category      string
	Excerpt       string
	Content       string
	FeaturedImage string
	Tags          string
}

// ProposalInputFromForm reads trimmed proposal fields.
func ProposalInputFromForm(v form.Values) ProposalInput {
	return ProposalInput{
		Title:         v.Text("title"),
		Author:        v.Text("author"),
		Category:      v.Text("category"),
		Excerpt:       v.Text("excerpt"),
		Content:       v.Text("content"),
		FeaturedImage: v.Text("featuredImage"),
		Tags:          v.Text("tags"),
	}
}

// ProposalSubmission is the outcome of ProposePost.
type ProposalSubmission struct {
	Status string
	Failed bool
	Form   ProposalInput
}

// Submissions sends listings and article proposals.
type Submissions struct {
	listings ListingService
	blog     BlogService
	dir      *Directory
	logger   *slog.Logger
	now      func() time.Time
}

// NewSubmissions wires the submission workflow. Successful listings re-query
// through dir.
func NewSubmissions(listings ListingService, blog BlogService, dir *Directory, logger *slog.Logger) *Submissions {
	return &Submissions{listings: listings, blog: blog, dir: dir, logger: logger, now: time.Now}
}

// CreateListing posts the listing. Nothing is retried.
func (s *Submissions) CreateListing(ctx context.Context, in ListingInput) ListingSubmission {
	if err := s.listings.CreateListing(ctx, in.Listing()); err != nil {
		s.logger.Warn("listing submission failed", "title", in.Title, "error", err)
		return ListingSubmission{Status: upstream.StatusMessage(err), Failed: true, Form: in}
	}

	s.logger.Info("listing submitted", "title", in.Title, "category", in.Category)
	results := s.dir.BrowseListings(ctx, query.ListingFilter{})
	return ListingSubmission{Status: StatusListingAdded, Results: &results}
}

// ProposePost sends a reader's article for review with status pending.
func (s *Submissions) ProposePost(ctx context.Context, in ProposalInput) ProposalSubmission {
	post := domain.BlogPost{
		Title:         in.Title,
		Author:        in.Author,
		Category:      in.Category,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		FeaturedImage: in.FeaturedImage,
		Tags:          form.ParseTags(in.Tags),
		PublishDate:   s.now().UTC(),
		Status:        domain.PostStatusPending,
	}
	if err := s.blog.CreatePost(ctx, post); err != nil {
		s.logger.Warn("article proposal failed", "title", in.Title, "error", err)
		return ProposalSubmission{Status: StatusProposalFailed, Failed: true, Form: in}
	}
	s.logger.Info("article proposed", "title", in.Title)
	return ProposalSubmission{Status: StatusProposalReceived}
}
