package dto

import (
	"errors"
	"net/http"

	"github.com/crm/backend/internal/domain/shared"
)

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	"INVALID_INPUT":       http.StatusBadRequest,
	"ALREADY_EXISTS":      http.StatusBadRequest,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"NOT_FOUND":           http.StatusNotFound,
	"INTERNAL_ERROR":      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromDomainError converts an error to a response envelope plus the
// HTTP status to send it with. Unexpected errors are masked as
// internal failures so their detail never reaches the client.
func FromDomainError(err error) (int, Response) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return GetHTTPStatus(domainErr.Code), NewErrorResponse(domainErr.Code, domainErr.Message)
	}
	return http.StatusInternalServerError, NewErrorResponse("INTERNAL_ERROR", "internal error")
}
