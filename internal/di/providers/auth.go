package providers

import (
	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/auth"
	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/logger"
)

// VisitorKey wraps the visitor token key bytes.
type VisitorKey []byte

// ProvideVisitorKey loads or generates the visitor token key.
func ProvideVisitorKey(i do.Injector) (VisitorKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Storage.VisitorKeyFile())
	if err != nil {
		return nil, err
	}

	log.Info("Visitor key loaded", "token_ttl", cfg.Visitor.TokenTTL)

	return VisitorKey(key), nil
}

// ProvideTokenService provides the PASETO visitor token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	key := do.MustInvoke[VisitorKey](i)

	return auth.NewTokenService([]byte(key), cfg.Visitor.TokenTTL)
}
