// Package search ranks blog posts with an in-memory Bleve index. It backs the
// "related articles" section of the article page.
package search

import (
	"github.com/cubhub/cubhub-web/internal/domain"
)

// PostDocument is a blog post as indexed for ranking.
type PostDocument struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags,omitempty"`
	Published int64    `json:"published"` // unix seconds, 0 when unknown
}

// ToMap converts the document so field names match the mapping.
func (d *PostDocument) ToMap() map[string]any {
	return map[string]any{
		"id":        d.ID,
		"title":     d.Title,
		"excerpt":   d.Excerpt,
		"category":  d.Category,
		"tags":      d.Tags,
		"published": float64(d.Published),
	}
}

// PostToDocument builds the index document for p.
func PostToDocument(p domain.BlogPost) *PostDocument {
	doc := &PostDocument{
		ID:       p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Category: p.Category,
		Tags:     p.Tags,
	}
	if !p.PublishDate.IsZero() {
		doc.Published = p.PublishDate.Unix()
	}
	return doc
}
