// Package response provides the JSON envelope and error mapping shared by the
// huma API and the plain chi handlers.
package response

import (
	"encoding/json/v2"
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
	"github.com/cubhub/cubhub-web/internal/upstream"
)

// EnvelopeVersion is the "v" field of every JSON response.
const EnvelopeVersion = 1

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Wrap builds the envelope for a status and payload.
func Wrap(status int, data any) Envelope {
	return Envelope{Version: EnvelopeVersion, Success: status < 400, Data: data}
}

// Error writes an error response with the given status code.
func Error(w http.ResponseWriter, status int, code domainerrors.Code, message string, logger *slog.Logger) {
	write(w, status, Envelope{
		Version: EnvelopeVersion,
		Error:   message,
		Code:    string(code),
	}, logger)
}

// TooManyRequests writes a 429 envelope.
func TooManyRequests(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusTooManyRequests, domainerrors.CodeRateLimited, message, logger)
}

// Classify maps err to a status, code and user-facing message. Domain errors
// carry their own code; upstream failures become 404 or 502.
func Classify(err error) (int, domainerrors.Code, string) {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.HTTPStatus(), domainErr.Code, domainErr.Message
	}
	if errors.Is(err, upstream.ErrNotFound) {
		return http.StatusNotFound, domainerrors.CodeNotFound, "not found"
	}
	var ue *upstream.Error
	if errors.As(err, &ue) {
		return http.StatusBadGateway, domainerrors.CodeUpstream, upstream.StatusMessage(err)
	}
	return http.StatusInternalServerError, domainerrors.CodeInternal, "internal server error"
}

func write(w http.ResponseWriter, status int, env Envelope, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.MarshalWrite(w, env); err != nil && logger != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}
