// Package handler contains the gin HTTP handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/crm/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides the shared response helpers.
type BaseHandler struct{}

// Success sends a 200 with the data wrapped in the envelope.
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 with the data wrapped in the envelope.
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 validation failure.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_INPUT", message))
}

// Unauthorized sends a 401.
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", message))
}

// HandleError maps a service error to its HTTP response.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	status, resp := dto.FromDomainError(err)
	c.JSON(status, resp)
}

// RequireActor returns the authenticated actor or writes a 401 and
// reports false.
func (h *BaseHandler) RequireActor(c *gin.Context) (identity.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.Unauthorized(c, "authentication required")
		return identity.Actor{}, false
	}
	return actor, true
}

// ParseUUIDParam parses a path parameter as a UUID, writing a 400 on
// failure.
func (h *BaseHandler) ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
