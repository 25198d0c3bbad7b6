package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcrm "github.com/crm/backend/internal/application/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
)

// CreateCustomerRequest is the create-customer payload.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// UpdateCustomerRequest is the partial-update payload. Absent fields
// are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// ListCustomersQuery holds the list query parameters.
type ListCustomersQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}

// CustomerResponse is the public view of a customer.
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerDetailResponse is a customer with its leads.
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	Leads    []LeadResponse   `json:"leads"`
}

// DeleteCustomerResponse reports the cascade outcome.
type DeleteCustomerResponse struct {
	Message      string `json:"message"`
	LeadsDeleted int64  `json:"leadsDeleted"`
}

// LeadResponse is the public view of a lead.
type LeadResponse struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customerId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toCustomerResponse(customer appcrm.CustomerDTO) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Company:   customer.Company,
		OwnerID:   customer.OwnerID,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func toLeadResponse(lead appcrm.LeadDTO) LeadResponse {
	return LeadResponse{
		ID:          lead.ID,
		CustomerID:  lead.CustomerID,
		Title:       lead.Title,
		Description: lead.Description,
		Status:      lead.Status,
		Value:       lead.Value,
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
	}
}

func toLeadResponses(leads []appcrm.LeadDTO) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		out[i] = toLeadResponse(lead)
	}
	return out
}

func toPaginatedCustomers(page *shared.Paginated[appcrm.CustomerDTO]) dto.PaginatedData {
	items := make([]CustomerResponse, len(page.Items))
	for i, customer := range page.Items {
		items[i] = toCustomerResponse(customer)
	}
	return dto.PaginatedData{
		Items:      items,
		Page:       page.Page,
		Limit:      page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
