package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthEnvelope struct {
	Version int            `json:"v"`
	Success bool           `json:"success"`
	Data    HealthResponse `json:"data"`
}

func TestHealthCheck_Success(t *testing.T) {
	ts := setupTestServer(t, Options{})

	w := ts.get("/health")

	assert.Equal(t, http.StatusOK, w.Code)

	var env healthEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Equal(t, statusHealthy, env.Data.Status)
	assert.Equal(t, statusHealthy, env.Data.Components["preferences"].Status)
	assert.Equal(t, statusHealthy, env.Data.Components["templates"].Status)
}

func TestHealthCheck_PreferencesDown(t *testing.T) {
	ts := setupTestServer(t, Options{})
	require.NoError(t, ts.prefs.Close())

	w := ts.get("/health")

	var env healthEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, statusUnhealthy, env.Data.Status)
	assert.Equal(t, "preference store unreachable", env.Data.Components["preferences"].Message)
}
