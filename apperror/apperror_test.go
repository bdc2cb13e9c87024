package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidationError("bad input", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad body", nil), http.StatusBadRequest},
		{"duplicate email", NewDuplicateEmailError("Email already registered", nil), http.StatusBadRequest},
		{"invalid credentials", NewInvalidCredentialsError("Incorrect email or password", nil), http.StatusBadRequest},
		{"unauthenticated is 403 not 401", NewUnauthenticatedError("Not authenticated", nil), http.StatusForbidden},
		{"not found", NewNotFoundError("Book not found", nil), http.StatusNotFound},
		{"database", NewDatabaseError("db down", nil), http.StatusInternalServerError},
		{"config", NewConfigError("bad config", nil), http.StatusInternalServerError},
		{"migration", NewMigrationError("migration failed", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "??", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponseHidesUnderlyingError(t *testing.T) {
	underlying := errors.New("connection refused to 10.0.0.5:5432")
	appErr := NewDatabaseError("failed to get user", underlying)

	resp := appErr.ToResponse()
	assert.Equal(t, "failed to get user", resp.Detail)
	assert.NotContains(t, resp.Detail, "10.0.0.5")
}

func TestErrorAndUnwrap(t *testing.T) {
	underlying := errors.New("root cause")
	appErr := NewInternalError("wrapper", underlying)

	assert.Equal(t, "wrapper: root cause", appErr.Error())
	assert.Equal(t, underlying, errors.Unwrap(appErr))
	assert.True(t, errors.Is(appErr, underlying))

	bare := NewNotFoundError("Book not found", nil)
	assert.Equal(t, "Book not found", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

func TestFromError(t *testing.T) {
	appErr, ok := FromError(NewNotFoundError("missing", nil))
	require.True(t, ok)
	assert.Equal(t, NotFoundError, appErr.Type)

	// Wrapped AppErrors are still found via the chain.
	wrapped := fmt.Errorf("outer: %w", NewUnauthenticatedError("nope", nil))
	appErr, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, UnauthenticatedError, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x", nil)))
	assert.False(t, IsNotFound(NewInternalError("x", nil)))

	assert.True(t, IsDuplicateEmail(NewDuplicateEmailError("x", nil)))
	assert.True(t, IsInvalidCredentials(NewInvalidCredentialsError("x", nil)))
	assert.True(t, IsUnauthenticated(NewUnauthenticatedError("x", nil)))
	assert.False(t, IsUnauthenticated(NewInvalidCredentialsError("x", nil)))
	assert.False(t, IsDuplicateEmail(errors.New("plain")))
}
