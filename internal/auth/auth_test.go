package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	key, err := LoadOrGenerateKey(filepath.Join(t.TempDir(), "visitor.key"))
	require.NoError(t, err)
	tokens, err := NewTokenService(key, ttl)
	require.NoError(t, err)
	return tokens
}

func TestLoadOrGenerateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "visitor.key")

	first, err := LoadOrGenerateKey(path)
	require.NoError(t, err)
	assert.Len(t, first, keyLength)

	second, err := LoadOrGenerateKey(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadOrGenerateKey_Invalid(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.key")
	require.NoError(t, os.WriteFile(short, []byte("abcd"), 0o600))
	_, err := LoadOrGenerateKey(short)
	assert.Error(t, err)

	notHex := filepath.Join(dir, "nothex.key")
	require.NoError(t, os.WriteFile(notHex, []byte(strings.Repeat("z", keyHexLength)), 0o600))
	_, err = LoadOrGenerateKey(notHex)
	assert.Error(t, err)
}

func TestNewTokenService_KeyLength(t *testing.T) {
	_, err := NewTokenService([]byte("short"), time.Hour)
	assert.Error(t, err)
}

func TestToken_RoundTrip(t *testing.T) {
	tokens := newTestTokens(t, time.Hour)
	visitorID := NewVisitorID()

	token, err := tokens.Issue(visitorID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, visitorID, claims.VisitorID())
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.True(t, strings.HasPrefix(claims.TokenID, "vtok-"))
}

func TestToken_Rejects(t *testing.T) {
	tokens := newTestTokens(t, time.Hour)
	other := newTestTokens(t, time.Hour)

	foreign, err := other.Issue(NewVisitorID())
	require.NoError(t, err)
	_, err = tokens.Verify(foreign)
	assert.Error(t, err, "token from another key")

	_, err = tokens.Verify("garbage")
	assert.Error(t, err)

	expired := newTestTokens(t, -time.Minute)
	stale, err := expired.Issue(NewVisitorID())
	require.NoError(t, err)
	_, err = expired.Verify(stale)
	assert.Error(t, err)

	notUUID, err := tokens.Issue("not-a-uuid")
	require.NoError(t, err)
	_, err = tokens.Verify(notUUID)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	tokens := newTestTokens(t, time.Hour)
	var seen string
	handler := Middleware(tokens, false, slog.New(slog.DiscardHandler))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = VisitorID(r.Context())
		}))

	// First visit issues a cookie.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	first := seen

	// Returning visit keeps the ID and sets no new cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, first, seen)
	assert.Empty(t, rec.Result().Cookies())

	// A tampered cookie starts a new visitor.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: cookies[0].Value + "x"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEqual(t, first, seen)
	assert.Len(t, rec.Result().Cookies(), 1)
}
