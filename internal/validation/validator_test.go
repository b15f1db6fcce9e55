package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/Liban-hassan-noor/eastlify-client/internal/errors"
	"github.com/Liban-hassan-noor/eastlify-client/internal/validation"
)

type TestRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
	Name     string `json:"name" validate:"required"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := TestRequest{
		Email:    "owner@example.com",
		Password: "password123",
		Name:     "Al-Amin Textiles",
	}

	err := v.Validate(req)
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name       string
		req        TestRequest
		wantErrMsg string
	}{
		{
			name: "missing required field",
			req: TestRequest{
				Email:    "owner@example.com",
				Password: "password123",
				Name:     "", // Missing
			},
			wantErrMsg: "name",
		},
		{
			name: "invalid email",
			req: TestRequest{
				Email:    "not-an-email",
				Password: "password123",
				Name:     "Al-Amin Textiles",
			},
			wantErrMsg: "email",
		},
		{
			name: "password too short",
			req: TestRequest{
				Email:    "owner@example.com",
				Password: "short",
				Name:     "Al-Amin Textiles",
			},
			wantErrMsg: "password",
		},
		{
			name: "password too long",
			req: TestRequest{
				Email:    "owner@example.com",
				Password: string(make([]byte, 1025)),
				Name:     "Al-Amin Textiles",
			},
			wantErrMsg: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			assert.Error(t, err)

			var domainErr *domainerrors.Error
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
				assert.Contains(t, domainErr.Message, tt.wantErrMsg)
			}
		})
	}
}

func TestValidator_SliceAndOneof(t *testing.T) {
	v := validation.New()

	type shopReq struct {
		Categories []string `json:"categories" validate:"required,min=1"`
		Kind       string   `json:"type" validate:"required,oneof=call whatsapp"`
	}

	err := v.Validate(shopReq{Categories: []string{}, Kind: "email"})
	assert.Error(t, err)

	var domainErr *domainerrors.Error
	if assert.True(t, errors.As(err, &domainErr)) {
		assert.Contains(t, domainErr.Message, "categories needs at least 1 entries")
		assert.Contains(t, domainErr.Message, "type must be one of: call, whatsapp")
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	req := TestRequest{
		Email:    "",
		Password: "password123",
		Name:     "Al-Amin Textiles",
	}

	err := v.Validate(req)
	assert.Error(t, err)

	// Should use JSON tag name "email", not struct field name "Email"
	assert.Contains(t, err.Error(), "email")
	assert.NotContains(t, err.Error(), "Email")
}
