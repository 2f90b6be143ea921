// Package di provides dependency injection configuration for the CubHub web front end.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/auth"
	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/di/providers"
	"github.com/cubhub/cubhub-web/internal/logger"
	"github.com/cubhub/cubhub-web/internal/metrics"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/taxonomy"
	"github.com/cubhub/cubhub-web/internal/upstream"
	"github.com/cubhub/cubhub-web/internal/workflow"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line flags, without the program name.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(args))
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideVisitorKey)
	do.Provide(injector, providers.ProvideMetrics)

	// Storage layer
	do.Provide(injector, providers.ProvidePreferences)
	do.Provide(injector, providers.ProvideSessionStore)

	// Upstream and rendering
	do.Provide(injector, providers.ProvideUpstreamClient)
	do.Provide(injector, providers.ProvideTaxonomy)
	do.Provide(injector, providers.ProvideTemplates)
	do.Provide(injector, providers.ProvideRenderSet)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Workflows
	do.Provide(injector, providers.ProvideDirectory)
	do.Provide(injector, providers.ProvideSubmissions)
	do.Provide(injector, providers.ProvideContentManager)

	// Workers
	do.Provide(injector, providers.ProvideTemplateReloader)
	do.Provide(injector, providers.ProvideSessionGCJob)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. Config and storage errors surface
// here instead of as a panic from a later invoke.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	if _, err := do.Invoke[providers.VisitorKey](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*metrics.Metrics](injector)
	if _, err := do.Invoke[*providers.PreferencesHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.SessionStoreHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*upstream.Client](injector)
	if _, err := do.Invoke[*taxonomy.Table](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*render.Templates](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*render.Set](injector)
	if _, err := do.Invoke[*auth.TokenService](injector); err != nil {
		return err
	}

	// Workflows
	_ = do.MustInvoke[*workflow.Directory](injector)
	_ = do.MustInvoke[*workflow.Submissions](injector)
	_ = do.MustInvoke[*workflow.Manager](injector)

	// Workers
	if _, err := do.Invoke[*providers.TemplateReloaderHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*providers.SessionGCJob](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
