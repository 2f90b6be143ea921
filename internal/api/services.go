package api

import (
	"context"

	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/metrics"
	"github.com/cubhub/cubhub-web/internal/taxonomy"
	"github.com/cubhub/cubhub-web/internal/workflow"
)

// Preferences persists per-visitor flags outside the favourite set.
type Preferences interface {
	AdminMode(ctx context.Context, visitorID string) (bool, error)
	SetAdminMode(ctx context.Context, visitorID string, on bool) error
	Ping(ctx context.Context) error
}

// Services groups the workflows and stores the HTTP layer drives.
// This keeps NewServer's parameter list short and tests can swap parts.
type Services struct {
	Directory   *workflow.Directory
	Submissions *workflow.Submissions
	Content     *workflow.Manager
	Taxonomy    *taxonomy.Table
	Preferences Preferences
	Metrics     *metrics.Metrics // optional
}

// binders returns the search and create subcategory binders.
func (s *Services) binders() (search, create *form.Binder) {
	return form.NewBinder(s.Taxonomy, form.SentinelAny), form.NewBinder(s.Taxonomy, form.SentinelSelect)
}
