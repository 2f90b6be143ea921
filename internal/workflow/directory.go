package workflow

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/query"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/search"
	"github.com/cubhub/cubhub-web/internal/upstream"
)

// Status messages shown when a browse query fails.
const (
	StatusListingsFailed = "Error loading listings. Please try again."
	StatusSittersFailed  = "Error loading sitters. Please try again."
	StatusPostsFailed    = "Error loading articles. Please try again."
)

// FeaturedCount is how many top-rated sitters the home page shows.
const FeaturedCount = 3

// Result is a rendered result list plus an optional status line.
type Result struct {
	Fragment render.Fragment
	Status   string
	Failed   bool
}

// Directory runs filter -> query -> render for every browsable record kind.
type Directory struct {
	listings   ListingService
	sitters    SitterService
	blog       BlogService
	favourites FavouriteStore
	render     *render.Set
	metrics    Recorder
	logger     *slog.Logger
}

// NewDirectory wires the browse workflow.
func NewDirectory(
	listings ListingService,
	sitters SitterService,
	blog BlogService,
	favourites FavouriteStore,
	set *render.Set,
	metrics Recorder,
	logger *slog.Logger,
) *Directory {
	return &Directory{
		listings:   listings,
		sitters:    sitters,
		blog:       blog,
		favourites: favourites,
		render:     set,
		metrics:    recorderOrNoop(metrics),
		logger:     logger,
	}
}

// Render exposes the renderer set to handlers.
func (d *Directory) Render() *render.Set {
	return d.render
}

func renderResult[T any](d *Directory, r *render.Renderer[T], items []T, kind string) Result {
	frag, err := r.Render(items)
	if err != nil {
		d.logger.Error("render failed", "kind", kind, "error", err)
		return Result{Fragment: r.Failed(), Failed: true}
	}
	return Result{Fragment: frag}
}

func failedResult[T any](r *render.Renderer[T], status string) Result {
	return Result{Fragment: r.Failed(), Status: status, Failed: true}
}

// BrowseListings queries the listing service with f.
func (d *Directory) BrowseListings(ctx context.Context, f query.ListingFilter) Result {
	items, err := d.listings.QueryListings(ctx, f.Query())
	if err != nil {
		d.logUpstream("listing query failed", err)
		return failedResult(d.render.Listings, StatusListingsFailed)
	}
	return renderResult(d, d.render.Listings, items, "listings")
}

// BrowseSitters queries sitters with f and marks the visitor's saved ones.
func (d *Directory) BrowseSitters(ctx context.Context, visitorID string, f query.SitterFilter) Result {
	sitters, err := d.sitters.QuerySitters(ctx, f.Query())
	if err != nil {
		d.logUpstream("sitter query failed", err)
		return failedResult(d.render.Sitters, StatusSittersFailed)
	}
	return renderResult(d, d.render.Sitters, d.entries(ctx, visitorID, sitters), "sitters")
}

// Featured renders the top rated sitters. Equal ratings keep service order.
func (d *Directory) Featured(ctx context.Context, visitorID string) Result {
	sitters, err := d.sitters.QuerySitters(ctx, nil)
	if err != nil {
		d.logUpstream("featured sitter query failed", err)
		return failedResult(d.render.Featured, StatusSittersFailed)
	}
	sitters = TopRated(sitters, FeaturedCount)
	return renderResult(d, d.render.Featured, d.entries(ctx, visitorID, sitters), "featured")
}

// TopRated returns up to n sitters by descending rating, stable on ties.
func TopRated(sitters []domain.Sitter, n int) []domain.Sitter {
	sorted := slices.Clone(sitters)
	slices.SortStableFunc(sorted, func(a, b domain.Sitter) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Sitter looks up one sitter by id among the service's sitters.
func (d *Directory) Sitter(ctx context.Context, visitorID, id string) (render.Card, string, error) {
	sitters, err := d.sitters.QuerySitters(ctx, nil)
	if err != nil {
		d.logUpstream("sitter query failed", err)
		return render.Card{}, "", err
	}
	for _, e := range d.entries(ctx, visitorID, sitters) {
		if e.ID == id {
			return d.render.Sitters.Card(e), e.Bio, nil
		}
	}
	return render.Card{}, "", upstream.ErrNotFound
}

func (d *Directory) entries(ctx context.Context, visitorID string, sitters []domain.Sitter) []render.SitterEntry {
	var saved []string
	if visitorID != "" && d.favourites != nil {
		ids, err := d.favourites.Favourites(ctx, visitorID)
		if err != nil {
			d.logger.Warn("load favourites failed", "visitor_id", visitorID, "error", err)
		}
		saved = ids
	}
	out := make([]render.SitterEntry, 0, len(sitters))
	for _, s := range sitters {
		out = append(out, render.SitterEntry{Sitter: s, Saved: slices.Contains(saved, s.ID)})
	}
	return out
}

// ToggleFavourite flips a sitter's saved state for the visitor.
func (d *Directory) ToggleFavourite(ctx context.Context, visitorID, sitterID string) (bool, error) {
	saved, err := d.favourites.Toggle(ctx, visitorID, sitterID)
	if err != nil {
		return false, err
	}
	d.metrics.FavouriteToggled(saved)
	return saved, nil
}

// Favourites lists the visitor's saved sitter ids.
func (d *Directory) Favourites(ctx context.Context, visitorID string) ([]string, error) {
	return d.favourites.Favourites(ctx, visitorID)
}

// BrowsePosts renders the public article list.
func (d *Directory) BrowsePosts(ctx context.Context, f query.PostFilter) Result {
	posts, err := d.blog.QueryPosts(ctx, f.Query())
	if err != nil {
		d.logUpstream("blog query failed", err)
		return failedResult(d.render.Posts, StatusPostsFailed)
	}
	return renderResult(d, d.render.Posts, posts, "posts")
}

// ManagedPosts renders the content manager's article grid.
func (d *Directory) ManagedPosts(ctx context.Context, f query.PostFilter) Result {
	posts, err := d.blog.QueryPosts(ctx, f.Query())
	if err != nil {
		d.logUpstream("blog query failed", err)
		return failedResult(d.render.Managed, StatusPostsFailed)
	}
	return renderResult(d, d.render.Managed, posts, "managed")
}

// Post loads a single article. Related posts come from the same category,
// excluding the article, ranked and capped; failures there only hide the
// section.
func (d *Directory) Post(ctx context.Context, id string) (*domain.BlogPost, render.Fragment, error) {
	post, err := d.blog.GetPost(ctx, id)
	if err != nil {
		if !errors.Is(err, upstream.ErrNotFound) {
			d.logUpstream("blog post load failed", err)
		}
		return nil, render.Fragment{}, err
	}
	return post, d.related(ctx, *post), nil
}

func (d *Directory) related(ctx context.Context, post domain.BlogPost) render.Fragment {
	if post.Category == "" {
		return render.Fragment{}
	}
	candidates, err := d.blog.QueryPosts(ctx, query.PostFilter{Category: post.Category}.Query())
	if err != nil {
		d.logUpstream("related posts query failed", err)
		return render.Fragment{}
	}
	related, err := search.RelatedPosts(ctx, post, candidates, search.DefaultRelatedLimit)
	if err != nil {
		d.logger.Warn("rank related posts failed", "post_id", post.ID, "error", err)
		return render.Fragment{}
	}
	if len(related) == 0 {
		return render.Fragment{}
	}
	frag, err := d.render.Related.Render(related)
	if err != nil {
		d.logger.Error("render failed", "kind", "related", "error", err)
		return render.Fragment{}
	}
	return frag
}

func (d *Directory) logUpstream(msg string, err error) {
	attrs := []any{"error", err}
	var ue *upstream.Error
	if errors.As(err, &ue) {
		attrs = append(attrs, "service", ue.Service, "op", ue.Op, "status", ue.Status)
	}
	d.logger.Warn(msg, attrs...)
}
