package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/cubhub/cubhub-web/internal/domain"
)

// DefaultRelatedLimit caps the related articles section.
const DefaultRelatedLimit = 3

// Related ranks ids of documents in the same category as current, excluding
// current itself. Title, excerpt and tag overlap raise the score; ties fall
// back to newest first.
func (s *PostIndex) Related(ctx context.Context, current *PostDocument, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	req := bleve.NewSearchRequestOptions(buildRelatedQuery(current), limit, 0, false)
	req.SortBy([]string{"-_score", "-published", "_id"})

	result, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search related: %w", err)
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	s.logger.Debug("related posts ranked", "post_id", current.ID, "candidates", result.Total, "returned", len(ids))
	return ids, nil
}

func buildRelatedQuery(current *PostDocument) query.Query {
	category := bleve.NewTermQuery(current.Category)
	category.SetField("category")

	var should []query.Query
	if strings.TrimSpace(current.Title) != "" {
		title := bleve.NewMatchQuery(current.Title)
		title.SetField("title")
		title.SetBoost(2.0)
		should = append(should, title)

		excerpt := bleve.NewMatchQuery(current.Title)
		excerpt.SetField("excerpt")
		should = append(should, excerpt)
	}
	for _, tag := range current.Tags {
		t := bleve.NewTermQuery(tag)
		t.SetField("tags")
		t.SetBoost(1.5)
		should = append(should, t)
	}

	self := bleve.NewDocIDQuery([]string{current.ID})

	q := bleve.NewBooleanQuery()
	q.AddMust(category)
	if len(should) > 0 {
		q.AddShould(should...)
		q.SetMinShould(0)
	}
	q.AddMustNot(self)
	return q
}

// RelatedPosts returns up to limit posts from candidates related to current.
// Candidates are usually the blog service's answer for current's category.
func RelatedPosts(ctx context.Context, current domain.BlogPost, candidates []domain.BlogPost, limit int) ([]domain.BlogPost, error) {
	if current.Category == "" || len(candidates) == 0 {
		return []domain.BlogPost{}, nil
	}

	idx, err := NewPostIndex(nil)
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	byID := make(map[string]domain.BlogPost, len(candidates))
	docs := make([]*PostDocument, 0, len(candidates))
	for _, p := range candidates {
		if p.ID == "" || p.ID == current.ID {
			continue
		}
		byID[p.ID] = p
		docs = append(docs, PostToDocument(p))
	}
	if err := idx.IndexDocuments(docs); err != nil {
		return nil, err
	}

	ids, err := idx.Related(ctx, PostToDocument(current), limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BlogPost, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out, nil
}
