// Package api serves the CubHub pages and the small JSON API beside them.
//
// Pages are server-rendered with html/template through the workflow package.
// The JSON API under /api/v1 is registered with huma and answers in the
// {v, success, data | error} envelope.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cubhub/cubhub-web/internal/auth"
	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/ratelimit"
)

// Options are the HTTP settings taken from config.
type Options struct {
	Version            string
	SecureCookies      bool
	CORSAllowedOrigins []string
	SubmitPerMinute    int
	SubmitBurst        int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services     *Services
	tokens       *auth.TokenService
	searchBinder *form.Binder
	createBinder *form.Binder
	limiter      *ratelimit.KeyedRateLimiter
	router       *chi.Mux
	api          huma.API
	opts         Options
	logger       *slog.Logger
	now          func() time.Time
}

// NewServer creates the HTTP server with all routes configured.
func NewServer(services *Services, tokens *auth.TokenService, opts Options, logger *slog.Logger) *Server {
	if opts.SubmitPerMinute <= 0 {
		opts.SubmitPerMinute = DefaultSubmitPerMinute
	}
	if opts.SubmitBurst <= 0 {
		opts.SubmitBurst = DefaultSubmitBurst
	}

	s := &Server{
		services: services,
		tokens:   tokens,
		limiter:  NewRateLimiter(opts.SubmitPerMinute, time.Minute, opts.SubmitBurst),
		router:   chi.NewRouter(),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
	s.searchBinder, s.createBinder = services.binders()

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("CubHub Web API", opts.Version)
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	if s.services.Metrics != nil {
		s.router.Use(s.services.Metrics.Middleware)
	}
	s.router.Use(s.apiCORS())
	s.router.Use(auth.Middleware(s.tokens, s.opts.SecureCookies, s.logger))
	s.router.Use(queryGeneration)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleHome)
	s.router.Get("/static/*", s.handleStatic)

	s.router.Get("/listings", s.handleListings)
	s.router.Get("/listings/subcategories", s.handleSubcategories)
	s.router.Get("/sitters", s.handleSitters)
	s.router.Get("/sitters/{id}", s.handleSitter)
	s.router.Get("/blog", s.handleBlog)
	s.router.Get("/blog/{id}", s.handleBlogPost)
	s.router.Get("/admin/blog", s.handleAdminBlog)

	// Every write goes through the per-client limiter. Routes stay flat so no
	// subrouter mount shadows a GET on the same path.
	s.router.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware(s.limiter, s.logger))

		r.Post("/listings", s.handleCreateListing)
		r.Post("/sitters/{id}/favourite", s.handleToggleFavourite)
		r.Post("/blog/proposals", s.handleProposePost)
		r.Post("/admin/mode", s.handleToggleAdminMode)

		r.Post(adminBlogPath, s.handleSubmitPost)
		r.Post(adminBlogPath+"/preview", s.handlePreviewPost)
		r.Post(adminBlogPath+"/cancel", s.handleCancelEdit)
		r.Post(adminBlogPath+"/{id}/edit", s.handleEditPost)
		r.Post(adminBlogPath+"/{id}/delete", s.handleDeletePost)
	})

	if s.services.Metrics != nil {
		s.router.Handle("/metrics", s.services.Metrics.Handler())
	}

	s.registerHealthRoutes()
	s.registerTaxonomyRoutes()
	s.registerFavouriteRoutes()
}
