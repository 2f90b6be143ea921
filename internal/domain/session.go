package domain

import "time"

// PostDraft holds the content manager form fields as typed by the editor.
// PublishDate uses the datetime-local layout in the display time zone.
type PostDraft struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Author        string `json:"author"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage"`
	Tags          string `json:"tags"`
	PublishDate   string `json:"publishDate"`
}

// EditSession is one visitor's content manager state between requests.
// Editing is the post currently being edited; nil means create mode.
type EditSession struct {
	VisitorID      string    `json:"visitorId"`
	Editing        *BlogPost `json:"editing,omitempty"`
	Draft          PostDraft `json:"draft"`
	PreviewVisible bool      `json:"previewVisible"`
	UpdatedAt      time.Time `json:"updatedAt,omitzero"`
}

// IsEditing reports whether the session holds a post reference.
func (s *EditSession) IsEditing() bool {
	return s.Editing != nil
}

// EditingID returns the held post id, or "" in create mode.
func (s *EditSession) EditingID() string {
	if s.Editing == nil {
		return ""
	}
	return s.Editing.ID
}
