package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
)

// Reloadable is anything that can re-read itself from a file tree.
type Reloadable interface {
	Reload(fsys fs.FS) error
}

// TemplateReloader re-parses templates from disk whenever a watched
// template file settles or disappears.
type TemplateReloader struct {
	dir     string
	target  Reloadable
	watcher *Watcher
	logger  *slog.Logger
}

// NewTemplateReloader watches dir for .html changes and reloads target.
func NewTemplateReloader(dir string, target Reloadable, logger *slog.Logger) (*TemplateReloader, error) {
	w, err := New(logger, Options{Extensions: []string{".html"}})
	if err != nil {
		return nil, err
	}
	if err := w.Watch(dir); err != nil {
		w.Stop() //nolint:errcheck // Already failing
		return nil, err
	}

	return &TemplateReloader{
		dir:     dir,
		target:  target,
		watcher: w,
		logger:  logger,
	}, nil
}

// Run reloads on every event until ctx is cancelled, then stops the watcher.
func (r *TemplateReloader) Run(ctx context.Context) error {
	go r.watcher.Start(ctx) //nolint:errcheck // Start only returns nil
	defer r.watcher.Stop()  //nolint:errcheck // Shutdown path

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-r.watcher.Events():
			if !ok {
				return nil
			}
			r.reload(event)
		case err, ok := <-r.watcher.Errors():
			if !ok {
				return nil
			}
			r.logger.Warn("template watcher error", "error", err)
		}
	}
}

func (r *TemplateReloader) reload(event Event) {
	if err := r.target.Reload(os.DirFS(r.dir)); err != nil {
		// The previous template set stays live.
		r.logger.Error("template reload failed", "path", event.Path, "error", err)
		return
	}
	r.logger.Info("templates reloaded", "path", event.Path, "change", event.Type.String())
}
