package api

import (
	"encoding/json/v2"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
	"github.com/cubhub/cubhub-web/internal/upstream"
)

func TestEnvelopeTransformer_AlwaysIncludesVersion(t *testing.T) {
	tests := []struct {
		name   string
		status string
		input  any
	}{
		{
			name:   "success response",
			status: "200",
			input:  map[string]string{"key": "value"},
		},
		{
			name:   "created response",
			status: "201",
			input:  map[string]string{"id": "123"},
		},
		{
			name:   "no content response",
			status: "204",
			input:  nil,
		},
		{
			name:   "bad request error",
			status: "400",
			input:  errors.New("invalid input"),
		},
		{
			name:   "not found error",
			status: "404",
			input:  errors.New("resource not found"),
		},
		{
			name:   "upstream error with details",
			status: "502",
			input: &APIError{
				Code:    "UPSTREAM",
				Message: "Error: service unavailable",
				Details: map[string]string{"service": "blog"},
			},
		},
		{
			name:   "internal server error",
			status: "500",
			input:  errors.New("internal error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EnvelopeTransformer(nil, tt.status, tt.input)
			require.NoError(t, err)

			// Marshal to JSON and parse as generic map to check structure
			jsonBytes, err := json.Marshal(result)
			require.NoError(t, err)

			var envelope map[string]any
			err = json.Unmarshal(jsonBytes, &envelope)
			require.NoError(t, err)

			// Verify version field exists and has correct value
			require.Contains(t, envelope, "v", "Envelope must contain version field 'v'")
			assert.Equal(t, float64(EnvelopeVersion), envelope["v"], "Version must be %d", EnvelopeVersion)
		})
	}
}

func TestEnvelopeTransformer_SuccessResponse(t *testing.T) {
	data := map[string]string{"category": "Tutors"}

	result, err := EnvelopeTransformer(nil, "200", data)
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok, "Expected APIEnvelope type")

	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.True(t, envelope.Success)
	assert.Equal(t, data, envelope.Data)
	assert.Empty(t, envelope.Error)
}

func TestEnvelopeTransformer_ErrorResponse(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "400", errors.New("validation failed"))
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok, "Expected APIEnvelope type")

	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.False(t, envelope.Success)
	assert.Nil(t, envelope.Data)
	assert.Equal(t, "validation failed", envelope.Error)
}

func TestEnvelopeTransformer_ErrorWithDetails(t *testing.T) {
	apiErr := &APIError{
		Code:    "VALIDATION",
		Message: "validation failed",
		Details: []string{"query.context: expected value to be one of \"search, create\""},
	}

	result, err := EnvelopeTransformer(nil, "422", apiErr)
	require.NoError(t, err)

	envelope, ok := result.(APIErrorEnvelope)
	require.True(t, ok, "Expected APIErrorEnvelope type")

	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION", envelope.Code)
	assert.Equal(t, "validation failed", envelope.Message)
	assert.Len(t, envelope.Details, 1)
}

func TestQueryGeneration(t *testing.T) {
	tests := []struct {
		gen  string
		want string
	}{
		{"7", "7"},
		{"00012", "00012"},
		{"12345678901234567890", "12345678901234567890"},
		{"123456789012345678901", ""},
		{"-1", ""},
		{"abc", ""},
		{"", ""},
	}

	h := queryGeneration(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for _, tt := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings?gen="+tt.gen, nil))
		assert.Equal(t, tt.want, w.Header().Get(GenerationHeader), "gen %q", tt.gen)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:52100"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func TestAPICORS_ScopedToAPI(t *testing.T) {
	s := &Server{opts: Options{CORSAllowedOrigins: []string{"https://cubhub.example"}}}
	h := s.apiCORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for path, want := range map[string]string{
		"/api/v1/taxonomy": "https://cubhub.example",
		"/listings":        "",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "https://cubhub.example")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, want, w.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestRegisterErrorHandler_ClassifiesErrors(t *testing.T) {
	RegisterErrorHandler()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"domain", domainerrors.Wrapf(nil, domainerrors.CodeNotFound, "sitter %s not found", "s1"), http.StatusNotFound, "NOT_FOUND"},
		{"upstream not found", upstream.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"upstream status", &upstream.Error{Service: upstream.ServiceBlog, Op: "GetPost", Status: 500, Err: upstream.ErrStatus}, http.StatusBadGateway, "UPSTREAM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := huma.NewError(http.StatusInternalServerError, "unexpected error occurred", tt.err)
			assert.Equal(t, tt.status, se.GetStatus())
			apiErr, ok := se.(*APIError)
			require.True(t, ok)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}

	se := huma.NewError(http.StatusTooManyRequests, RateLimitMessage)
	assert.Equal(t, "RATE_LIMITED", se.(*APIError).Code)
}
