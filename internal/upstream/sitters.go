package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cubhub/cubhub-web/internal/domain"
)

type sittersResponse struct {
	Success bool            `json:"success"`
	Sitters []domain.Sitter `json:"sitters"`
	Message string          `json:"message"`
}

// QuerySitters returns sitters matching q. A response with success=false is
// reported as ErrRejected carrying the service message.
func (c *Client) QuerySitters(ctx context.Context, q url.Values) ([]domain.Sitter, error) {
	const op = "QuerySitters"
	body, err := c.do(ctx, call{
		service: ServiceSitters,
		op:      op,
		method:  http.MethodGet,
		path:    c.cfg.SittersPath,
		query:   q,
	})
	if err != nil {
		return nil, err
	}

	var resp sittersResponse
	if err := decode(ServiceSitters, op, body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, wrapError(ServiceSitters, op, http.StatusOK, resp.Message, ErrRejected)
	}
	if resp.Sitters == nil {
		return []domain.Sitter{}, nil
	}
	return resp.Sitters, nil
}
