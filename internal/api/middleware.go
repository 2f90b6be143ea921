package api

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// apiPrefix scopes CORS and JSON error bodies.
const apiPrefix = "/api/"

func isAPIPath(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, apiPrefix)
}

// requestLogger logs one line per request through the server's slog logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// apiCORS applies the configured CORS policy to /api/ paths only. With no
// allowed origins configured the API is same-origin.
func (s *Server) apiCORS() func(http.Handler) http.Handler {
	if len(s.opts.CORSAllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	policy := cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{GenerationHeader},
		MaxAge:         300,
	})
	return func(next http.Handler) http.Handler {
		withCORS := policy(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isAPIPath(r) {
				withCORS.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// queryGeneration echoes a well-formed gen parameter so the client can drop
// responses to superseded queries. The server does no fencing itself.
func queryGeneration(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gen := r.URL.Query().Get(paramGeneration); validGeneration(gen) {
			w.Header().Set(GenerationHeader, gen)
		}
		next.ServeHTTP(w, r)
	})
}

func validGeneration(gen string) bool {
	if gen == "" || len(gen) > 20 {
		return false
	}
	for _, c := range gen {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// clientIP keys the rate limiter. RealIP has already rewritten RemoteAddr
// from the forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
