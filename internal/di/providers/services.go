package providers

import (
	"os"

	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/logger"
	"github.com/cubhub/cubhub-web/internal/metrics"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/taxonomy"
	"github.com/cubhub/cubhub-web/internal/upstream"
	"github.com/cubhub/cubhub-web/internal/workflow"
)

// ProvideMetrics provides the Prometheus collectors.
func ProvideMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(), nil
}

// ProvideUpstreamClient provides the listing, sitter and blog client.
func ProvideUpstreamClient(i do.Injector) (*upstream.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	client := upstream.New(upstream.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		ListingsPath: cfg.Upstream.ListingsPath,
		SubmitPath:   cfg.Upstream.SubmitPath,
		SittersPath:  cfg.Upstream.SittersPath,
		BlogPath:     cfg.Upstream.BlogPath,
		ManagePath:   cfg.Upstream.ManagePath,
		Timeout:      cfg.Upstream.Timeout,
	}, log.Logger, m)

	log.Info("Upstream client configured", "base_url", cfg.Upstream.BaseURL, "timeout", cfg.Upstream.Timeout)
	return client, nil
}

// ProvideTaxonomy loads the category table.
func ProvideTaxonomy(i do.Injector) (*taxonomy.Table, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	table, err := taxonomy.Load(cfg.Display.TaxonomyFile)
	if err != nil {
		return nil, err
	}

	source := cfg.Display.TaxonomyFile
	if source == "" {
		source = "embedded"
	}
	log.Info("Taxonomy loaded", "source", source, "categories", len(table.Categories()))
	return table, nil
}

// ProvideTemplates parses the page templates, from disk when a template
// directory is configured and from the binary otherwise.
func ProvideTemplates(i do.Injector) (*render.Templates, error) {
	cfg := do.MustInvoke[*config.Config](i)

	if dir := cfg.Display.TemplateDir; dir != "" {
		return render.LoadTemplates(os.DirFS(dir))
	}
	return render.LoadTemplates(render.EmbeddedFS())
}

// ProvideRenderSet provides the card renderers.
func ProvideRenderSet(i do.Injector) (*render.Set, error) {
	cfg := do.MustInvoke[*config.Config](i)
	tmpl := do.MustInvoke[*render.Templates](i)

	return render.NewSet(tmpl, cfg.Display.Location), nil
}

// ProvideDirectory provides the browse workflow.
func ProvideDirectory(i do.Injector) (*workflow.Directory, error) {
	client := do.MustInvoke[*upstream.Client](i)
	prefs := do.MustInvoke[*PreferencesHandle](i)
	set := do.MustInvoke[*render.Set](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	log := do.MustInvoke[*logger.Logger](i)

	return workflow.NewDirectory(client, client, client, prefs.Store, set, m, log.Logger), nil
}

// ProvideSubmissions provides the listing and proposal submission workflow.
func ProvideSubmissions(i do.Injector) (*workflow.Submissions, error) {
	client := do.MustInvoke[*upstream.Client](i)
	dir := do.MustInvoke[*workflow.Directory](i)
	log := do.MustInvoke[*logger.Logger](i)

	return workflow.NewSubmissions(client, client, dir, log.Logger), nil
}

// ProvideContentManager provides the blog editor workflow.
func ProvideContentManager(i do.Injector) (*workflow.Manager, error) {
	cfg := do.MustInvoke[*config.Config](i)
	client := do.MustInvoke[*upstream.Client](i)
	sessions := do.MustInvoke[*SessionStoreHandle](i)
	dir := do.MustInvoke[*workflow.Directory](i)
	m := do.MustInvoke[*metrics.Metrics](i)
	log := do.MustInvoke[*logger.Logger](i)

	return workflow.NewManager(client, sessions.Store, dir, cfg.Display.Location, m, log.Logger), nil
}
