// Package store keeps content manager edit sessions in BadgerDB so the
// "currently editing" reference survives between requests.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// DefaultSessionTTL bounds how long an idle edit session is kept.
const DefaultSessionTTL = 2 * time.Hour

// Store wraps a Badger database.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
	ttl    time.Duration
}

// New opens the database at path. An empty path opens an in-memory database.
func New(path string, ttl time.Duration, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	} else {
		opts.SyncWrites = true
		opts.CompactL0OnClose = true
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	if logger != nil {
		logger.Info("session database opened", "path", path, "ttl", ttl)
	}
	return &Store{db: db, logger: logger, ttl: ttl}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing session database")
	}
	return s.db.Close()
}

// RunGC reclaims value log space. Badger returns ErrNoRewrite when there
// was nothing to collect.
func (s *Store) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

func (s *Store) setWithTTL(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, data).WithTTL(s.ttl))
	})
}

func (s *Store) delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}
