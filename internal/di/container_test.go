package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/di/providers"
)

func testArgs(t *testing.T, dataPath string) []string {
	t.Helper()
	return []string{
		"-env", "development",
		"-log-level", "error",
		"-data-path", dataPath,
		"-port", "0",
		"-upstream-url", "http://127.0.0.1:1",
		"-env-file", filepath.Join(t.TempDir(), "missing.env"),
	}
}

func TestBootstrap_WiresEverything(t *testing.T) {
	t.Setenv("TEMPLATE_DIR", "")
	t.Setenv("TAXONOMY_FILE", "")
	dataPath := filepath.Join(t.TempDir(), "data")

	injector := NewContainer(testArgs(t, dataPath))
	require.NoError(t, Bootstrap(injector))

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, dataPath, cfg.Storage.DataPath)

	srv := do.MustInvoke[*providers.HTTPServerHandle](injector)
	assert.NotNil(t, srv.Handler)

	// Stores live in the data directory.
	assert.FileExists(t, cfg.Storage.PreferencesDB())
	assert.FileExists(t, cfg.Storage.VisitorKeyFile())
	assert.DirExists(t, cfg.Storage.SessionsDir())

	report := injector.Shutdown()
	require.NotNil(t, report)
	assert.True(t, report.Succeed, report.Error())
	assert.Empty(t, report.Errors)
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")
	args := []string{
		"-data-path", t.TempDir(),
		"-env-file", filepath.Join(t.TempDir(), "missing.env"),
	}

	injector := NewContainer(args)
	err := Bootstrap(injector)
	assert.Error(t, err)
}

func TestBootstrap_TemplateDirReloader(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"layout.html":        `{{define "layout"}}{{template "content" .}}{{end}}`,
		"partials/card.html": `{{define "card"}}card{{end}}`,
		"pages/home.html":    `{{define "content"}}home{{end}}`,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	args := append(testArgs(t, t.TempDir()), "-template-dir", dir)
	injector := NewContainer(args)
	require.NoError(t, Bootstrap(injector))

	_, err := do.Invoke[*providers.TemplateReloaderHandle](injector)
	assert.NoError(t, err)

	report := injector.Shutdown()
	require.NotNil(t, report)
	assert.True(t, report.Succeed, report.Error())
	assert.Empty(t, report.Errors)
}
