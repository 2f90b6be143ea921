package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/cubhub/cubhub-web/internal/domain"
)

const sessionPrefix = "edit:session:"

func sessionKey(visitorID string) []byte {
	return []byte(sessionPrefix + visitorID)
}

// GetSession returns the visitor's edit session or ErrSessionNotFound.
func (s *Store) GetSession(_ context.Context, visitorID string) (*domain.EditSession, error) {
	var session domain.EditSession
	if err := s.get(sessionKey(visitorID), &session); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// LoadSession returns the visitor's edit session, or a fresh create-mode
// session when none is stored.
func (s *Store) LoadSession(ctx context.Context, visitorID string) (*domain.EditSession, error) {
	session, err := s.GetSession(ctx, visitorID)
	if errors.Is(err, ErrSessionNotFound) {
		return &domain.EditSession{VisitorID: visitorID}, nil
	}
	return session, err
}

// SaveSession stores the session and restarts its TTL.
func (s *Store) SaveSession(_ context.Context, session *domain.EditSession) error {
	if session.VisitorID == "" {
		return errors.New("save session: missing visitor id")
	}
	session.UpdatedAt = time.Now()
	if err := s.setWithTTL(sessionKey(session.VisitorID), session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// DeleteSession removes the visitor's session. Deleting a missing session is
// not an error.
func (s *Store) DeleteSession(_ context.Context, visitorID string) error {
	if err := s.delete(sessionKey(visitorID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
