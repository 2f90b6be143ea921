package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/logger"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/watcher"
)

// TemplateReloaderHandle owns the development template reloader. It is
// inert when no template directory is configured.
type TemplateReloaderHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Shutdown implements do.Shutdownable.
func (h *TemplateReloaderHandle) Shutdown() error {
	if h.cancel == nil {
		return nil
	}
	h.cancel()
	<-h.done
	return nil
}

// ProvideTemplateReloader watches the template directory and re-parses on change.
func ProvideTemplateReloader(i do.Injector) (*TemplateReloaderHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	tmpl := do.MustInvoke[*render.Templates](i)

	dir := cfg.Display.TemplateDir
	if dir == "" {
		return &TemplateReloaderHandle{}, nil
	}

	r, err := watcher.NewTemplateReloader(dir, tmpl, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := r.Run(ctx); err != nil {
			log.Error("Template reloader error", "error", err)
		}
	}()

	log.Info("Watching templates", "path", dir)

	return &TemplateReloaderHandle{cancel: cancel, done: done}, nil
}

// SessionGCJob periodically reclaims session store space.
type SessionGCJob struct {
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (j *SessionGCJob) Shutdown() error {
	j.cancel()
	return nil
}

// ProvideSessionGCJob provides the periodic value log GC job.
func ProvideSessionGCJob(i do.Injector) (*SessionGCJob, error) {
	sessions := do.MustInvoke[*SessionStoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ticker := time.NewTicker(gcInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := sessions.RunGC(); err != nil {
					log.Warn("Session store GC failed", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("Session GC job started", "interval", gcInterval)

	return &SessionGCJob{cancel: cancel}, nil
}
