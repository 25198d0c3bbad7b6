package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/crm/backend/internal/application/crm"
)

// CustomerHandler handles the customer endpoints.
type CustomerHandler struct {
	BaseHandler
	customerService *appcrm.CustomerService
}

// NewCustomerHandler creates a customer handler.
func NewCustomerHandler(customerService *appcrm.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body CreateCustomerRequest true "Customer details"
// @Success      201 {object} dto.Response{data=CustomerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name is required")
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), actor, appcrm.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCustomerResponse(*customer))
}

// List godoc
// @Summary      List accessible customers
// @Tags         customers
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        search query string false "Search in name, email and company"
// @Success      200 {object} dto.Response{data=dto.PaginatedData}
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var query ListCustomersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "invalid query parameters")
		return
	}

	page, err := h.customerService.List(c.Request.Context(), actor, appcrm.ListCustomersInput{
		Page:     query.Page,
		PageSize: query.Limit,
		Search:   query.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPaginatedCustomers(page))
}

// Get godoc
// @Summary      Get a customer with its leads
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer id"
// @Success      200 {object} dto.Response{data=CustomerDetailResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.customerService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CustomerDetailResponse{
		Customer: toCustomerResponse(detail.Customer),
		Leads:    toLeadResponses(detail.Leads),
	})
}

// Update godoc
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer id"
// @Param        request body UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=CustomerResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), actor, id, appcrm.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCustomerResponse(*customer))
}

// Delete godoc
// @Summary      Delete a customer and all of its leads
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer id"
// @Success      200 {object} dto.Response{data=DeleteCustomerResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	actor, ok := h.RequireActor(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.customerService.Delete(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DeleteCustomerResponse{
		Message:      "customer and associated leads deleted",
		LeadsDeleted: result.LeadsDeleted,
	})
}
