package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crm/backend/internal/domain/shared"
)

func TestGetHTTPStatus(t *testing.T) {
	cases := map[string]int{
		"INVALID_INPUT":       http.StatusBadRequest,
		"ALREADY_EXISTS":      http.StatusBadRequest,
		"UNAUTHORIZED":        http.StatusUnauthorized,
		"INVALID_CREDENTIALS": http.StatusUnauthorized,
		"FORBIDDEN":           http.StatusForbidden,
		"NOT_FOUND":           http.StatusNotFound,
		"INTERNAL_ERROR":      http.StatusInternalServerError,
		"SOMETHING_ELSE":      http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, GetHTTPStatus(code), code)
	}
}

func TestFromDomainError(t *testing.T) {
	t.Run("domain error keeps its code", func(t *testing.T) {
		status, resp := FromDomainError(shared.NewNotFoundError("customer"))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
		assert.Equal(t, "customer not found", resp.Error.Message)
	})

	t.Run("unexpected error detail is masked", func(t *testing.T) {
		status, resp := FromDomainError(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, "pq:")
	})

	t.Run("wrapped internal error is masked", func(t *testing.T) {
		status, resp := FromDomainError(shared.NewInternalError(errors.New("disk full")))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.NotContains(t, resp.Error.Message, "disk full")
	})
}
