package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
	"github.com/cubhub/cubhub-web/internal/http/response"
	"github.com/cubhub/cubhub-web/internal/upstream"
)

// APIError is a custom error type that implements huma.StatusError.
// It maps domain and upstream errors to HTTP responses with consistent structure.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// newAPIError classifies err the same way the plain JSON helpers do.
func newAPIError(err error) *APIError {
	status, code, msg := response.Classify(err)
	apiErr := &APIError{status: status, Code: string(code), Message: msg}
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		apiErr.Details = domainErr.Details
	}
	return apiErr
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return newAPIError(err)
			}
			var upstreamErr *upstream.Error
			if errors.As(err, &upstreamErr) || errors.Is(err, upstream.ErrNotFound) {
				return newAPIError(err)
			}
		}

		apiErr := &APIError{
			status:  status,
			Code:    string(statusToCode(status)),
			Message: message,
		}
		if len(errs) > 0 && status == http.StatusUnprocessableEntity {
			apiErr.Details = errorDetails(errs)
		}
		return apiErr
	}
}

// errorDetails flattens huma's validation errors into messages.
func errorDetails(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err.Error())
		}
	}
	return out
}

// statusToCode maps HTTP status codes to our domain error codes.
func statusToCode(status int) domainerrors.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domainerrors.CodeValidation
	case http.StatusNotFound:
		return domainerrors.CodeNotFound
	case http.StatusTooManyRequests:
		return domainerrors.CodeRateLimited
	case http.StatusBadGateway:
		return domainerrors.CodeUpstream
	default:
		return domainerrors.CodeInternal
	}
}
