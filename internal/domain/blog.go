package domain

import (
	"encoding/json/v2"
	"time"
)

// Post statuses understood by the blog content service.
const (
	PostStatusPublished = "published"
	PostStatusPending   = "pending"
)

// publishDateLayouts are tried in order when decoding publishDate.
var publishDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// BlogPost is an article managed by the blog content service.
type BlogPost struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Tags          []string  `json:"tags"`
	PublishDate   time.Time `json:"publishDate,omitzero"`
	Status        string    `json:"status,omitempty"`
}

// UnmarshalJSON decodes a post from the content service. A missing, empty or
// unparseable publishDate leaves the zero time so one bad record cannot fail
// a whole listing.
func (p *BlogPost) UnmarshalJSON(data []byte) error {
	type plain BlogPost
	var aux struct {
		plain
		PublishDate any `json:"publishDate"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = BlogPost(aux.plain)
	if s, ok := aux.PublishDate.(string); ok {
		p.PublishDate = parsePublishDate(s)
	}
	return nil
}

func parsePublishDate(s string) time.Time {
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsNew reports whether the post has not been stored yet.
func (p *BlogPost) IsNew() bool {
	return p.ID == ""
}
