package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubhub/cubhub-web/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s, err := New("", ttl, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSession_RoundTrip(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	session := &domain.EditSession{
		VisitorID: "v1",
		Editing:   &domain.BlogPost{ID: "42", Title: "Sleep", Tags: []string{"baby"}},
		Draft:     domain.PostDraft{Title: "Sleep", Tags: "baby", PublishDate: "2025-03-01T09:30"},
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "42", got.EditingID())
	assert.Equal(t, session.Draft, got.Draft)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSession_Missing(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, err := s.GetSession(ctx, "nobody")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	fresh, err := s.LoadSession(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", fresh.VisitorID)
	assert.False(t, fresh.IsEditing())
}

func TestSession_Delete(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &domain.EditSession{VisitorID: "v1"}))
	require.NoError(t, s.DeleteSession(ctx, "v1"))
	require.NoError(t, s.DeleteSession(ctx, "v1"))

	_, err := s.GetSession(ctx, "v1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_RequiresVisitor(t *testing.T) {
	s := newTestStore(t, time.Hour)
	assert.Error(t, s.SaveSession(context.Background(), &domain.EditSession{}))
}

func TestSession_Expires(t *testing.T) {
	s := newTestStore(t, time.Second)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &domain.EditSession{VisitorID: "v1"}))
	_, err := s.GetSession(ctx, "v1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := s.GetSession(ctx, "v1")
		return err != nil
	}, 5*time.Second, 100*time.Millisecond)
}
