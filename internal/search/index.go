package search

import (
	"fmt"
	"log/slog"

	"github.com/blevesearch/bleve/v2"
)

// PostIndex wraps an in-memory Bleve index of posts. It is built per ranking
// request from the posts the blog service returned and then discarded.
type PostIndex struct {
	index  bleve.Index
	logger *slog.Logger
}

// NewPostIndex creates an empty in-memory index.
func NewPostIndex(logger *slog.Logger) (*PostIndex, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &PostIndex{index: index, logger: logger}, nil
}

// Close releases the index.
func (s *PostIndex) Close() error {
	return s.index.Close()
}

// IndexDocuments indexes docs in one batch. Documents without an id are skipped.
func (s *PostIndex) IndexDocuments(docs []*PostDocument) error {
	batch := s.index.NewBatch()
	for _, doc := range docs {
		if doc.ID == "" {
			continue
		}
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("execute batch: %w", err)
	}
	return nil
}

// DocumentCount returns the number of indexed documents.
func (s *PostIndex) DocumentCount() (uint64, error) {
	return s.index.DocCount()
}
