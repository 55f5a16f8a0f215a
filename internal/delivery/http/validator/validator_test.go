package validator

import (
	"net/http"
	"testing"

	domainerrors "tnp/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string  `json:"name" validate:"required,min=10,max=60"`
	Email    string  `json:"email" validate:"required,email"`
	RegNo    string  `json:"regNo" validate:"required,len=10"`
	Password string  `json:"password" validate:"required,min=8,max=16,password"`
	Branch   string  `json:"branch" validate:"required,oneof=CSE IT"`
	CGPA     float64 `json:"cgpa" validate:"gte=0,lte=10"`
	Photo    *string `json:"profileImg,omitempty" validate:"omitempty,url"`
}

func validRequest() signupRequest {
	return signupRequest{
		Name:     "Ada Lovelace Byron",
		Email:    "ada@example.com",
		RegNo:    "2021000001",
		Password: "Secret#123",
		Branch:   "CSE",
		CGPA:     9.1,
	}
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid request", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, v.Validate(&req))
	})

	t.Run("field errors keyed by json name", func(t *testing.T) {
		req := validRequest()
		req.Name = "short"
		req.Email = "not-an-email"
		req.RegNo = "123"
		req.Branch = "ARTS"
		req.CGPA = 11
		photo := "not a url"
		req.Photo = &photo

		err := v.Validate(&req)
		require.Error(t, err)

		var apiErr *domainerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, domainerrors.CategoryValidation, apiErr.Category())
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.HTTPCode())

		fields := apiErr.Fields()
		assert.Equal(t, []string{"String must contain at least 10 character(s)"}, fields["name"])
		assert.Equal(t, []string{"Invalid email"}, fields["email"])
		assert.Equal(t, []string{"String must contain exactly 10 character(s)"}, fields["regNo"])
		assert.Equal(t, []string{"Invalid enum value. Expected one of: CSE, IT"}, fields["branch"])
		assert.Equal(t, []string{"Number must be less than or equal to 10"}, fields["cgpa"])
		assert.Equal(t, []string{"Invalid url"}, fields["profileImg"])
	})

	t.Run("required", func(t *testing.T) {
		req := validRequest()
		req.Email = ""

		err := v.Validate(&req)

		var apiErr *domainerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, []string{"Required"}, apiErr.Fields()["email"])
	})

	t.Run("non-struct input is a bad request", func(t *testing.T) {
		err := v.Validate("plain string")

		var apiErr *domainerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.HTTPCode())
	})
}

func TestValidator_Password(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all classes", password: "Secret#123", valid: true},
		{name: "underscore counts as special", password: "Secret_123", valid: true},
		{name: "missing special", password: "Secret1234", valid: false},
		{name: "missing upper", password: "secret#123", valid: false},
		{name: "missing lower", password: "SECRET#123", valid: false},
		{name: "missing digit", password: "Secret#abc", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Password = tt.password

			err := v.Validate(&req)
			if tt.valid {
				assert.NoError(t, err)

				return
			}

			var apiErr *domainerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, []string{PasswordMessage}, apiErr.Fields()["password"])
		})
	}
}
