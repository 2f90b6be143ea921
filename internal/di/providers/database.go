package providers

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/logger"
	"github.com/cubhub/cubhub-web/internal/store"
	"github.com/cubhub/cubhub-web/internal/store/sqlite"
)

// PreferencesHandle wraps the SQLite preferences store with shutdown capability.
type PreferencesHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *PreferencesHandle) Shutdown() error {
	return h.Close()
}

// ProvidePreferences opens the favourites and admin-mode database.
func ProvidePreferences(i do.Injector) (*PreferencesHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if err := os.MkdirAll(cfg.Storage.DataPath, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sqlite.Open(cfg.Storage.PreferencesDB(), log.Logger)
	if err != nil {
		return nil, err
	}
	return &PreferencesHandle{Store: db}, nil
}

// SessionStoreHandle wraps the Badger edit-session store with shutdown capability.
type SessionStoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *SessionStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideSessionStore opens the content manager session store.
func ProvideSessionStore(i do.Injector) (*SessionStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	// The preferences provider creates the data directory.
	_ = do.MustInvoke[*PreferencesHandle](i)

	db, err := store.New(cfg.Storage.SessionsDir(), cfg.Visitor.SessionTTL, log.Logger)
	if err != nil {
		return nil, err
	}
	return &SessionStoreHandle{Store: db}, nil
}
