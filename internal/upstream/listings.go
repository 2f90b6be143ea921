package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cubhub/cubhub-web/internal/domain"
)

type listingsResponse struct {
	Items []domain.Listing `json:"items"`
}

// QueryListings returns listings matching q. A missing items field is an
// empty result.
func (c *Client) QueryListings(ctx context.Context, q url.Values) ([]domain.Listing, error) {
	const op = "QueryListings"
	body, err := c.do(ctx, call{
		service: ServiceListings,
		op:      op,
		method:  http.MethodGet,
		path:    c.cfg.ListingsPath,
		query:   q,
	})
	if err != nil {
		return nil, err
	}

	var resp listingsResponse
	if err := decode(ServiceListings, op, body, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return []domain.Listing{}, nil
	}
	return resp.Items, nil
}

// CreateListing submits a new listing. The success body is ignored.
func (c *Client) CreateListing(ctx context.Context, l domain.Listing) error {
	_, err := c.do(ctx, call{
		service: ServiceListings,
		op:      "CreateListing",
		method:  http.MethodPost,
		path:    c.cfg.SubmitPath,
		payload: l,
	})
	return err
}
