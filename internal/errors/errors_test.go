package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeUpstream, http.StatusBadGateway},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeConfig, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := Wrapf(nil, CodeNotFound, "post %s", "blog-1")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "post blog-1", err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := Wrap(cause, CodeUpstream, "listing query failed")

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "listing query failed: dial tcp: refused", err.Error())
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus())
}

func TestValidationWithDetails(t *testing.T) {
	details := map[string]string{"category": "required"}
	err := ValidationWithDetails("invalid input", details)

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, details, err.Details)
}
