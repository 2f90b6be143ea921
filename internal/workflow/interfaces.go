// Package workflow holds the front end's user-facing operations: browsing
// listings, sitters and articles, submitting listings and proposals, and the
// content manager's create/edit state machine.
//
// Workflows never propagate upstream failures to the page. They log them and
// degrade to an empty result plus a status message.
package workflow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/url"

	"github.com/cubhub/cubhub-web/internal/domain"
)

// ListingService queries and creates listings.
type ListingService interface {
	QueryListings(ctx context.Context, q url.Values) ([]domain.Listing, error)
	CreateListing(ctx context.Context, l domain.Listing) error
}

// SitterService queries sitter profiles.
type SitterService interface {
	QuerySitters(ctx context.Context, q url.Values) ([]domain.Sitter, error)
}

// BlogService reads and writes blog posts.
type BlogService interface {
	QueryPosts(ctx context.Context, q url.Values) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, id string) (*domain.BlogPost, error)
	CreatePost(ctx context.Context, p domain.BlogPost) error
	UpdatePost(ctx context.Context, p domain.BlogPost) error
	DeletePost(ctx context.Context, id string) error
}

// FavouriteStore persists a visitor's saved sitters.
type FavouriteStore interface {
	Favourites(ctx context.Context, visitorID string) ([]string, error)
	Toggle(ctx context.Context, visitorID, sitterID string) (bool, error)
}

// SessionStore persists content manager sessions between requests.
type SessionStore interface {
	LoadSession(ctx context.Context, visitorID string) (*domain.EditSession, error)
	SaveSession(ctx context.Context, session *domain.EditSession) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Recorder receives workflow counters. A nil Recorder is allowed.
type Recorder interface {
	FavouriteToggled(saved bool)
	ContentTransition(name string)
}

type noopRecorder struct{}

func (noopRecorder) FavouriteToggled(bool)     {}
func (noopRecorder) ContentTransition(string) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
