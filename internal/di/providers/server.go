package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/api"
	"github.com/cubhub/cubhub-web/internal/auth"
	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/logger"
	"github.com/cubhub/cubhub-web/internal/metrics"
	"github.com/cubhub/cubhub-web/internal/taxonomy"
	"github.com/cubhub/cubhub-web/internal/workflow"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	handler *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	defer h.handler.Close()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts listening.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	prefs := do.MustInvoke[*PreferencesHandle](i)

	services := &api.Services{
		Directory:   do.MustInvoke[*workflow.Directory](i),
		Submissions: do.MustInvoke[*workflow.Submissions](i),
		Content:     do.MustInvoke[*workflow.Manager](i),
		Taxonomy:    do.MustInvoke[*taxonomy.Table](i),
		Preferences: prefs.Store,
		Metrics:     do.MustInvoke[*metrics.Metrics](i),
	}

	handler := api.NewServer(services, tokens, api.Options{
		Version:            Version,
		SecureCookies:      cfg.App.Environment == "production",
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		SubmitPerMinute:    cfg.RateLimit.PerMinute,
		SubmitBurst:        cfg.RateLimit.Burst,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv, handler: handler}, nil
}
