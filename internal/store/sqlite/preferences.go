package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
)

// Preference keys.
const (
	KeyFavouriteSitters = "favouriteSitters"
	KeyAdminMode        = "cubhub_admin_mode"
)

type preference struct {
	VisitorID string `db:"visitor_id"`
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

// get returns the stored value and whether it exists.
func get(ctx context.Context, q sqlx.QueryerContext, visitorID, key string) (string, bool, error) {
	var value string
	err := sqlx.GetContext(ctx, q, &value,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`, visitorID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return value, true, nil
}

func put(ctx context.Context, e sqlx.ExtContext, visitorID, key, value string) error {
	_, err := sqlx.NamedExecContext(ctx, e, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (:visitor_id, :key, :value, :updated_at)
		ON CONFLICT(visitor_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		preference{VisitorID: visitorID, Key: key, Value: value, UpdatedAt: formatTime(time.Now())})
	if err != nil {
		return fmt.Errorf("put preference %s: %w", key, err)
	}
	return nil
}

func remove(ctx context.Context, e sqlx.ExecerContext, visitorID, key string) error {
	_, err := e.ExecContext(ctx, `DELETE FROM preferences WHERE visitor_id = ? AND key = ?`, visitorID, key)
	if err != nil {
		return fmt.Errorf("delete preference %s: %w", key, err)
	}
	return nil
}

func favourites(ctx context.Context, q sqlx.QueryerContext, visitorID string) ([]string, error) {
	raw, ok, err := get(ctx, q, visitorID, KeyFavouriteSitters)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	if !ok {
		return ids, nil
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode favourites: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Favourites returns the visitor's saved sitter ids in the order they were
// saved. A visitor with nothing saved gets an empty slice.
func (s *Store) Favourites(ctx context.Context, visitorID string) ([]string, error) {
	return favourites(ctx, s.db, visitorID)
}

// IsFavourite reports whether sitterID is saved.
func (s *Store) IsFavourite(ctx context.Context, visitorID, sitterID string) (bool, error) {
	ids, err := s.Favourites(ctx, visitorID)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, sitterID), nil
}

// Toggle removes sitterID from the visitor's favourites if present and
// appends it otherwise. It returns the new membership.
func (s *Store) Toggle(ctx context.Context, visitorID, sitterID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	ids, err := favourites(ctx, tx, visitorID)
	if err != nil {
		return false, err
	}

	saved := false
	if i := slices.Index(ids, sitterID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, sitterID)
		saved = true
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return false, fmt.Errorf("encode favourites: %w", err)
	}
	if err := put(ctx, tx, visitorID, KeyFavouriteSitters, string(data)); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("favourite toggled", "visitor_id", visitorID, "sitter_id", sitterID, "saved", saved)
	}
	return saved, nil
}

// AdminMode reports whether the visitor switched on admin affordances.
func (s *Store) AdminMode(ctx context.Context, visitorID string) (bool, error) {
	v, ok, err := get(ctx, s.db, visitorID, KeyAdminMode)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

// SetAdminMode stores the flag. Switching it off removes the key.
func (s *Store) SetAdminMode(ctx context.Context, visitorID string, on bool) error {
	if !on {
		return remove(ctx, s.db, visitorID, KeyAdminMode)
	}
	return put(ctx, s.db, visitorID, KeyAdminMode, "true")
}
