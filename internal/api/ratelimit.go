package api

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cubhub/cubhub-web/internal/http/response"
	"github.com/cubhub/cubhub-web/internal/ratelimit"
)

// RateLimitMessage is shown when a client submits too quickly.
const RateLimitMessage = "Too many requests. Please try again later."

// NewRateLimiter converts "n per interval" into a keyed limiter.
func NewRateLimiter(ratePerInterval int, interval time.Duration, burst int) *ratelimit.KeyedRateLimiter {
	return ratelimit.New(ratelimit.PerInterval(ratePerInterval, interval), burst)
}

// RateLimitMiddleware rejects requests over the client's budget with 429.
// Clients that accept JSON get the error envelope, browsers get plain text.
func RateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)
				if acceptsJSON(r) {
					response.TooManyRequests(w, RateLimitMessage, logger)
					return
				}
				http.Error(w, RateLimitMessage, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// limitOperation applies the same budget to huma write operations.
func (s *Server) limitOperation(ctx huma.Context, next func(huma.Context)) {
	key := ctx.RemoteAddr()
	if host, _, err := net.SplitHostPort(key); err == nil {
		key = host
	}
	if !s.limiter.Allow(key) {
		s.logger.Warn("Rate limit exceeded", "ip", key, "path", ctx.URL().Path)
		_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, RateLimitMessage)
		return
	}
	next(ctx)
}
