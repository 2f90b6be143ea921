package auth

import (
	"context"
	"log/slog"
	"net/http"
)

// CookieName is the visitor cookie.
const CookieName = "cubhub_visitor"

type ctxKey string

const visitorIDKey ctxKey = "visitorID"

// VisitorID returns the visitor ID stored by Middleware, or "".
func VisitorID(ctx context.Context) string {
	v, _ := ctx.Value(visitorIDKey).(string)
	return v
}

// WithVisitorID stores a visitor ID in ctx.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorIDKey, visitorID)
}

// Middleware resolves the visitor from the cookie. A missing or invalid
// cookie gets a new visitor ID and a fresh cookie.
func Middleware(tokens *TokenService, secure bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(CookieName); err == nil {
				if claims, err := tokens.Verify(c.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), claims.VisitorID())))
					return
				}
			}

			visitorID := NewVisitorID()
			token, err := tokens.Issue(visitorID)
			if err != nil {
				logger.Error("issue visitor token", "error", err)
			} else {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(tokens.TTL().Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), visitorID)))
		})
	}
}
