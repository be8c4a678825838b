package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	wrapped := fmt.Errorf("handler: %w", NewForbidden("Access denied for role 'user'"))
	de := ToDomainError(wrapped)
	assert.Equal(t, http.StatusForbidden, de.HTTPStatus)
	assert.Equal(t, "FORBIDDEN", de.Code)

	de = ToDomainError(fiber.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", de.Code)

	de = ToDomainError(fmt.Errorf("get vegetable: %w", pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", de.Message)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)

	boom := errors.New("boom")
	de = ToDomainError(boom)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, "internal server error", de.Message, "unexpected errors are not echoed")
	assert.ErrorIs(t, de, boom)
}

func TestConstructors(t *testing.T) {
	de := ToDomainError(NewNotFound("Soil type", nil))
	assert.Equal(t, "Soil type not found", de.Message)
	assert.NotNil(t, de.Details)

	cause := errors.New(`duplicate key value violates unique constraint "vegetables_pkey"`)
	de = ToDomainError(NewStoreError(cause))
	assert.Equal(t, cause.Error(), de.Message)
	assert.ErrorIs(t, de, cause)

	de = ToDomainError(NewInvalidCredentials())
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "Invalid credentials!", de.Message)
}
