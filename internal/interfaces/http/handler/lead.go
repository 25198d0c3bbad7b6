package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	appcrm "github.com/crm/backend/internal/application/crm"
	"github.com/crm/backend/internal/domain/crm"
)

// RegisterLeadValidators installs the custom binding validators used
// by the lead payloads.
func RegisterLeadValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("leadstatus", func(fl validator.FieldLevel) bool {
			return crm.LeadStatus(fl.Field().String()).Valid()
		})
	}
}

// LeadHandler handles the lead endpoints.
type LeadHandler struct {
	BaseHandler
	leadService *appcrm.LeadService
}

// NewLeadHandler creates a lead handler.
func NewLeadHandler(leadService *appcrm.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Create godoc
// @Summary      Create a lead under a customer
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer id"
// @Param        request body CreateLeadRequest true "Lead details"
// @Success      201 {object} dto.Response{data=LeadResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{customerId}/leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	customerID, ok := h.ParseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "title is required and status must be valid")
		return
	}

	lead, err := h.leadService.CreateForCustomer(c.Request.Context(), actor, customerID, appcrm.CreateLeadInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Value:       req.Value,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toLeadResponse(*lead))
}

// List godoc
// @Summary      List a customer's leads
// @Tags         leads
// @Produce      json
// @Param        customerId path string true "Customer id"
// @Param        status query string false "Filter by status"
// @Success      200 {object} dto.Response{data=[]LeadResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{customerId}/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	customerID, ok := h.ParseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	var query ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "invalid query parameters")
		return
	}

	leads, err := h.leadService.ListForCustomer(c.Request.Context(), actor, customerID, query.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toLeadResponses(leads))
}

// Update godoc
// @Summary      Update a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id path string true "Lead id"
// @Param        request body UpdateLeadRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=LeadResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), actor, id, appcrm.UpdateLeadInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Value:       req.Value,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toLeadResponse(*lead))
}

// Delete godoc
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Param        id path string true "Lead id"
// @Success      200 {object} dto.Response{data=DeleteLeadResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DeleteLeadResponse{Message: "lead deleted"})
}
