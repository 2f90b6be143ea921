package render

import (
	"html/template"
	"time"

	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/form"
)

// Page is the chrome shared by every page.
type Page struct {
	Title       string
	Active      string
	AdminMode   bool
	Year        int
	Status      string
	StatusError bool
}

// SetStatus records a user-visible status line.
func (p *Page) SetStatus(msg string, isErr bool) {
	p.Status = msg
	p.StatusError = isErr
}

// HomePage shows the featured sitters.
type HomePage struct {
	Page
	Featured Fragment
}

// ListingSearch is the listing filter form.
type ListingSearch struct {
	Category    *form.Select
	Subcategory *form.Select
	Town        string
	Q           string
	DBS         bool
	FirstAid    bool
	Ofsted      bool
	SEN         bool
}

// ListingForm is the create-listing form.
type ListingForm struct {
	Category         *form.Select
	Subcategory      *form.Select
	Title            string
	Town             string
	Website          string
	Email            string
	Phone            string
	About            string
	Tags             string
	FeaturedImageURL string
	DBS              bool
	FirstAid         bool
	Ofsted           bool
	SEN              bool
}

// ListingsPage is the listing search page.
type ListingsPage struct {
	Page
	Search  ListingSearch
	Results Fragment
	Form    ListingForm
}

// Choice is a checkbox option.
type Choice struct {
	Value   string
	Label   string
	Checked bool
}

// SitterFilters is the sitter filter form.
type SitterFilters struct {
	Location   string
	PriceRange *form.Select
	Skills     []Choice
	Verified   []Choice
}

// SittersPage is the sitter browse page.
type SittersPage struct {
	Page
	Filters SitterFilters
	Results Fragment
}

// SitterPage is a single sitter profile.
type SitterPage struct {
	Page
	Found  bool
	Sitter Card
	Bio    string
}

// ProposalForm is the public article proposal form.
type ProposalForm struct {
	Category      *form.Select
	Title         string
	Author        string
	Excerpt       string
	Content       string
	FeaturedImage string
	Tags          string
}

// BlogPage is the public article list.
type BlogPage struct {
	Page
	Q        string
	Category *form.Select
	Results  Fragment
	Proposal ProposalForm
}

// PostPage is a single article with related posts.
type PostPage struct {
	Page
	Found   bool
	Post    PostView
	Related Fragment
}

// Editor is the content manager form in its current mode.
type Editor struct {
	Heading       string
	SubmitLabel   string
	Editing       bool
	ID            string
	Category      *form.Select
	Title         string
	Author        string
	Excerpt       string
	Content       string
	FeaturedImage string
	Tags          string
	PublishDate   string
	ScrollTo      bool
}

// AdminBlogPage is the content manager.
type AdminBlogPage struct {
	Page
	Editor   Editor
	Preview  *PostView
	Articles Fragment
	Q        string
	Category *form.Select
}

// Hidden is a hidden form field carried through a confirmation.
type Hidden struct {
	Name  string
	Value string
}

// ConfirmPage asks the user to confirm a destructive action.
type ConfirmPage struct {
	Page
	Prompt     string
	Action     string
	Hidden     []Hidden
	CancelHref string
}

// PostView is a read-only rendering of a post, used by the article page and
// the editor preview.
type PostView struct {
	ID       string
	Title    string
	Author   string
	Category string
	Date     string
	Image    string
	Tags     []string
	Excerpt  string
	Content  template.HTML
}

// PostView applies the article fallbacks. A zero publish date renders as now.
func (s *Set) PostView(p domain.BlogPost) PostView {
	date := p.PublishDate
	if date.IsZero() {
		date = time.Now()
	}
	v := PostView{
		ID:       p.ID,
		Title:    fallback(p.Title, UntitledArticle),
		Author:   fallback(p.Author, DefaultAuthor),
		Category: p.Category,
		Date:     s.FormatDate(date, DateLong),
		Image:    p.FeaturedImage,
		Excerpt:  PlainText(p.Excerpt),
		Content:  LineBreaks(MarkdownText(p.Content)),
	}
	if len(p.Tags) > 0 {
		v.Tags = p.Tags
	}
	return v
}
