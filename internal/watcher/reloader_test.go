package watcher

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplates struct {
	mu      sync.Mutex
	calls   int
	content string
	fail    bool
	reloads chan struct{}
}

func (f *fakeTemplates) Reload(fsys fs.FS) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() { f.reloads <- struct{}{} }()

	f.calls++
	if f.fail {
		return errors.New("parse error")
	}
	data, err := fs.ReadFile(fsys, "home.html")
	if err != nil {
		return err
	}
	f.content = string(data)
	return nil
}

func TestTemplateReloader_ReloadsOnChange(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	dir := t.TempDir()
	target := &fakeTemplates{reloads: make(chan struct{}, 10)}

	r, err := NewTemplateReloader(dir, target, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("<h1>Hi</h1>"), 0o644))

	select {
	case <-target.reloads:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for reload")
	}

	target.mu.Lock()
	assert.Equal(t, "<h1>Hi</h1>", target.content)
	target.mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestTemplateReloader_IgnoresOtherFiles(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	dir := t.TempDir()
	target := &fakeTemplates{reloads: make(chan struct{}, 10)}

	r, err := NewTemplateReloader(dir, target, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx) //nolint:errcheck // Test goroutine

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-target.reloads:
		t.Fatal("unexpected reload for non-template file")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestTemplateReloader_FailedReloadKeepsRunning(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	dir := t.TempDir()
	target := &fakeTemplates{fail: true, reloads: make(chan struct{}, 10)}

	r, err := NewTemplateReloader(dir, target, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx) //nolint:errcheck // Test goroutine

	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("{{"), 0o644))
	select {
	case <-target.reloads:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for first reload")
	}

	target.mu.Lock()
	target.fail = false
	target.mu.Unlock()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("<p>fixed</p>"), 0o644))
	select {
	case <-target.reloads:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for second reload")
	}

	target.mu.Lock()
	assert.Equal(t, "<p>fixed</p>", target.content)
	target.mu.Unlock()
}

func TestNewTemplateReloader_MissingDir(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	_, err := NewTemplateReloader(filepath.Join(t.TempDir(), "nope"), &fakeTemplates{}, logger)
	assert.Error(t, err)
}
