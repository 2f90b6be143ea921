package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
	"github.com/cubhub/cubhub-web/internal/validation"
)

type listingForm struct {
	Title    string `form:"title" validate:"required,max=200"`
	Category string `form:"category" validate:"required"`
	Email    string `form:"email" validate:"omitempty,email"`
	Website  string `json:"website" validate:"omitempty,url"`
}

func TestValidator_Valid(t *testing.T) {
	v := validation.New()

	err := v.Validate(listingForm{Title: "Little Acorns", Category: "Tutors", Email: "hi@acorns.test"})
	assert.NoError(t, err)
}

func TestValidator_FieldDetails(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		form      listingForm
		wantField string
		wantMsg   string
	}{
		{"missing title", listingForm{Category: "Tutors"}, "title", "is required"},
		{"bad email", listingForm{Title: "x", Category: "Tutors", Email: "nope"}, "email", "must be a valid email address"},
		{"bad website", listingForm{Title: "x", Category: "Tutors", Website: "not a url"}, "website", "must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}
