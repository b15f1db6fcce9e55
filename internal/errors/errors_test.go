package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Liban-hassan-noor/eastlify-client/internal/errors"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeUnauthorized, http.StatusUnauthorized},
		{errors.CodeForbidden, http.StatusForbidden},
		{errors.CodeValidation, http.StatusBadRequest},
		{errors.CodeConflict, http.StatusConflict},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), "code %s", tt.code)
	}
}

func TestFromHTTPStatus_RoundTrip(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 409} {
		code := errors.FromHTTPStatus(status)
		assert.Equal(t, status, code.HTTPStatus(), "status %d", status)
	}
	assert.Equal(t, errors.CodeInternal, errors.FromHTTPStatus(http.StatusBadGateway))
}

func TestServerReported(t *testing.T) {
	err := errors.ServerReported(http.StatusConflict, "Email already registered")
	assert.Equal(t, errors.CodeConflict, err.Code)
	assert.Equal(t, "Email already registered", err.Message)

	// Empty server message falls back to the status text.
	err = errors.ServerReported(http.StatusNotFound, "")
	assert.Equal(t, "Not Found", err.Message)
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := errors.NotFound("Shop not found")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.False(t, errors.Is(err, errors.ErrForbidden))
}

func TestError_CauseChain(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := errors.Unavailable("could not reach the server").WithCause(cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "could not reach the server")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationWithDetails(t *testing.T) {
	err := errors.ValidationWithDetails("email is required", map[string]string{"email": "is required"})
	assert.Equal(t, errors.CodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.NotNil(t, err.Details)
}
