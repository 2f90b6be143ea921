package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cubhub/cubhub-web/internal/domain"
)

type postsResponse struct {
	Posts []domain.BlogPost `json:"posts"`
}

type postResponse struct {
	Post *domain.BlogPost `json:"post"`
}

// QueryPosts returns posts matching q (q, category).
func (c *Client) QueryPosts(ctx context.Context, q url.Values) ([]domain.BlogPost, error) {
	const op = "QueryPosts"
	body, err := c.do(ctx, call{
		service: ServiceBlog,
		op:      op,
		method:  http.MethodGet,
		path:    c.cfg.BlogPath,
		query:   q,
	})
	if err != nil {
		return nil, err
	}

	var resp postsResponse
	if err := decode(ServiceBlog, op, body, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return []domain.BlogPost{}, nil
	}
	return resp.Posts, nil
}

// GetPost fetches one post. A missing post is ErrNotFound.
func (c *Client) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	const op = "GetPost"
	body, err := c.do(ctx, call{
		service: ServiceBlog,
		op:      op,
		method:  http.MethodGet,
		path:    c.cfg.BlogPath,
		query:   url.Values{"id": {id}},
	})
	if err != nil {
		return nil, err
	}

	var resp postResponse
	if err := decode(ServiceBlog, op, body, &resp); err != nil {
		return nil, err
	}
	if resp.Post == nil {
		return nil, wrapError(ServiceBlog, op, http.StatusOK, "", ErrNotFound)
	}
	return resp.Post, nil
}

// CreatePost sends a post without an id to the content service.
func (c *Client) CreatePost(ctx context.Context, p domain.BlogPost) error {
	p.ID = ""
	_, err := c.do(ctx, call{
		service: ServiceBlog,
		op:      "CreatePost",
		method:  http.MethodPost,
		path:    c.cfg.ManagePath,
		payload: p,
	})
	return err
}

// UpdatePost replaces the stored post with id p.ID.
func (c *Client) UpdatePost(ctx context.Context, p domain.BlogPost) error {
	const op = "UpdatePost"
	if p.ID == "" {
		return wrapError(ServiceBlog, op, 0, "missing post id", ErrRejected)
	}
	_, err := c.do(ctx, call{
		service: ServiceBlog,
		op:      op,
		method:  http.MethodPut,
		path:    c.cfg.ManagePath,
		payload: p,
	})
	return err
}

// DeletePost deletes the post with id, passing the id as a query parameter.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		service: ServiceBlog,
		op:      "DeletePost",
		method:  http.MethodDelete,
		path:    c.cfg.ManagePath,
		query:   url.Values{"id": {id}},
	})
	return err
}
