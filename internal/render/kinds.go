package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/cubhub/cubhub-web/internal/domain"
)

// Date layouts for post cards and pages.
const (
	DateShort = "02/01/2006"
	DateLong  = "January 2, 2006"
)

// Card budgets and caps per record kind.
const (
	ListingAboutBudget  = 160
	ListingTagCap       = 8
	SitterBioBudget     = 120
	SitterSkillCap      = 3
	FeaturedBioBudget   = 80
	PostTagCap          = 5
	ManagedExcerptLimit = 100
	RelatedExcerptLimit = 80
)

// Empty-state and fallback text.
const (
	UntitledListing  = "Untitled"
	UntitledArticle  = "Untitled Article"
	DefaultAuthor    = "Admin"
	PostPlaceholder  = "📰"
	ImagePlaceholder = "No Image"
	SitterNoPhoto    = "👤"

	EmptyListings = "No listings match your filters yet."
	EmptySitters  = "No sitters found matching your criteria. Try adjusting your filters."
	EmptyPosts    = "No articles found."
	EmptyManaged  = "No articles yet. Write your first one above."
)

var verifiedLabels = map[string]string{
	domain.VerifiedDBS:        "DBS ✓",
	domain.VerifiedFirstAid:   "First Aid ✓",
	domain.VerifiedReferences: "Refs ✓",
	domain.VerifiedQualified:  "Qualified ✓",
}

// VerifiedLabel maps a verified feature code to its badge, passing unknown
// codes through unchanged.
func VerifiedLabel(code string) string {
	if l, ok := verifiedLabels[code]; ok {
		return l
	}
	return code
}

// SitterEntry is a sitter plus whether the visitor saved it.
type SitterEntry struct {
	domain.Sitter
	Saved bool
}

// Set holds the renderer for every card kind plus the page templates.
type Set struct {
	Templates *Templates
	Location  *time.Location

	Listings *Renderer[domain.Listing]
	Sitters  *Renderer[SitterEntry]
	Featured *Renderer[SitterEntry]
	Posts    *Renderer[domain.BlogPost]
	Managed  *Renderer[domain.BlogPost]
	Related  *Renderer[domain.BlogPost]
}

// NewSet wires every kind against tmpl. Dates render in loc.
func NewSet(tmpl *Templates, loc *time.Location) *Set {
	if loc == nil {
		loc = time.UTC
	}
	s := &Set{Templates: tmpl, Location: loc}

	s.Listings = NewRenderer(tmpl, Kind[domain.Listing]{
		Template:     "listing-cards",
		One:          "result",
		Many:         "results",
		TextBudget:   ListingAboutBudget,
		Ellipsis:     EllipsisChar,
		BadgeCap:     ListingTagCap,
		EmptyMessage: EmptyListings,
		Project:      projectListing,
	})
	s.Sitters = NewRenderer(tmpl, Kind[SitterEntry]{
		Template:     "sitter-cards",
		One:          "babysitter",
		Many:         "babysitters",
		CountPrefix:  "Showing",
		TextBudget:   SitterBioBudget,
		Ellipsis:     EllipsisDots,
		BadgeCap:     SitterSkillCap,
		Placeholder:  SitterNoPhoto,
		EmptyMessage: EmptySitters,
		Project:      projectSitter(false),
	})
	s.Featured = NewRenderer(tmpl, Kind[SitterEntry]{
		Template:     "featured-cards",
		One:          "babysitter",
		Many:         "babysitters",
		TextBudget:   FeaturedBioBudget,
		Ellipsis:     EllipsisDots,
		BadgeCap:     0,
		Placeholder:  SitterNoPhoto,
		EmptyMessage: EmptySitters,
		Project:      projectSitter(true),
	})
	s.Posts = NewRenderer(tmpl, Kind[domain.BlogPost]{
		Template:     "post-cards",
		One:          "article",
		Many:         "articles",
		BadgeCap:     PostTagCap,
		Placeholder:  PostPlaceholder,
		EmptyMessage: EmptyPosts,
		Project:      s.projectPost,
	})
	s.Managed = NewRenderer(tmpl, Kind[domain.BlogPost]{
		Template:     "managed-cards",
		One:          "article",
		Many:         "articles",
		TextBudget:   ManagedExcerptLimit,
		Ellipsis:     EllipsisDots,
		BadgeCap:     0,
		Placeholder:  ImagePlaceholder,
		EmptyMessage: EmptyManaged,
		Project:      s.projectManaged,
	})
	s.Related = NewRenderer(tmpl, Kind[domain.BlogPost]{
		Template:    "related-cards",
		One:         "article",
		Many:        "articles",
		TextBudget:  RelatedExcerptLimit,
		Ellipsis:    EllipsisDots,
		BadgeCap:    0,
		Placeholder: PostPlaceholder,
		Project:     s.projectPost,
	})
	return s
}

func projectListing(l domain.Listing) Card {
	c := Card{
		Title:    fallback(l.Title, UntitledListing),
		Meta:     []string{l.Category, l.Town},
		Image:    l.FeaturedImageURL,
		ImageAlt: "",
		Text:     PlainText(l.About),
		Class:    "listing " + Slug(l.Category),
	}
	for _, t := range l.Tags {
		c.Badges = append(c.Badges, Badge{Label: t})
	}
	if l.Website != "" {
		c.Links = append(c.Links, Link{Label: "Visit website", Href: l.Website, External: true})
	}
	return c
}

func projectSitter(featured bool) func(SitterEntry) Card {
	return func(e SitterEntry) Card {
		s := e.Sitter
		c := Card{
			ID:       s.ID,
			Title:    s.FullName(),
			Href:     "/sitters/" + s.ID,
			Image:    s.ProfileImage,
			ImageAlt: s.FullName(),
			Text:     PlainText(s.Bio),
			Stars:    Stars(s.Rating),
			Saved:    e.Saved,
			Links:    []Link{{Label: "View Profile", Href: "/sitters/" + s.ID}},
		}
		if s.ProfileImage == "" {
			c.Placeholder = s.Initials()
		}
		if featured {
			c.Reviews = "(" + strconv.Itoa(s.ReviewCount) + ")"
			return c
		}

		c.Reviews = "(" + Pluralize(s.ReviewCount, "review", "reviews") + ")"
		if s.Experience != "" {
			c.Meta = append(c.Meta, s.Experience+" experience")
		}
		if len(s.AgeGroups) > 0 {
			c.Meta = append(c.Meta, "Ages "+strings.Join(s.AgeGroups, ", "))
		}
		for _, v := range s.VerifiedFeatures {
			c.Verified = append(c.Verified, Badge{Label: VerifiedLabel(v), Verified: true})
		}
		for _, skill := range s.Skills {
			c.Badges = append(c.Badges, Badge{Label: Capitalize(skill)})
		}
		if s.Location != "" {
			c.Byline = "📍 " + s.Location
		}
		c.Rate = "£" + strconv.FormatFloat(s.HourlyRate, 'f', -1, 64) + "/hour"
		return c
	}
}

func (s *Set) projectPost(p domain.BlogPost) Card {
	c := Card{
		ID:       p.ID,
		Title:    fallback(p.Title, UntitledArticle),
		Href:     "/blog/" + p.ID,
		Meta:     []string{p.Category, s.FormatDate(p.PublishDate, DateShort)},
		Image:    p.FeaturedImage,
		ImageAlt: p.Title,
		Text:     PlainText(p.Excerpt),
		Byline:   "By " + fallback(p.Author, DefaultAuthor),
		Class:    "blog-card",
	}
	for _, t := range p.Tags {
		c.Badges = append(c.Badges, Badge{Label: t})
	}
	return c
}

func (s *Set) projectManaged(p domain.BlogPost) Card {
	c := s.projectPost(p)
	c.Class = "blog-management-card"
	c.Links = []Link{
		{Label: "Edit", Href: "/admin/blog/" + p.ID + "/edit"},
		{Label: "Delete", Href: "/admin/blog/" + p.ID + "/delete"},
		{Label: "View", Href: "/blog/" + p.ID, External: true},
	}
	return c
}

// FormatDate renders t in the display zone. A zero time renders empty.
func (s *Set) FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.In(s.Location).Format(layout)
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
