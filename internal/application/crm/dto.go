// Package crm implements the application services for customers and
// leads, including the ownership checks applied to every operation.
package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crm/backend/internal/domain/crm"
)

// CreateCustomerInput carries the fields for creating a customer. The
// owner is always the acting user, never part of the input.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// UpdateCustomerInput carries a partial customer update. Nil fields
// are left unchanged.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// ListCustomersInput carries pagination and search options.
type ListCustomersInput struct {
	Page     int
	PageSize int
	Search   string
}

// CustomerDTO is the service-level view of a customer.
type CustomerDTO struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Company   string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerDetailDTO is a customer together with its leads, newest
// first.
type CustomerDetailDTO struct {
	Customer CustomerDTO
	Leads    []LeadDTO
}

// DeleteCustomerResult reports what the cascade removed.
type DeleteCustomerResult struct {
	CustomerID   uuid.UUID
	LeadsDeleted int64
}

// CreateLeadInput carries the fields for creating a lead under a
// customer.
type CreateLeadInput struct {
	Title       string
	Description string
	Status      string
	Value       decimal.Decimal
}

// UpdateLeadInput carries a partial lead update.
type UpdateLeadInput struct {
	Title       *string
	Description *string
	Status      *string
	Value       *decimal.Decimal
}

// LeadDTO is the service-level view of a lead.
type LeadDTO struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Title       string
	Description string
	Status      string
	Value       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toCustomerDTO(customer *crm.Customer) CustomerDTO {
	return CustomerDTO{
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

func toLeadDTO(lead *crm.Lead) LeadDTO {
	return LeadDTO{
		ID:          lead.ID,
		CustomerID:  lead.CustomerID,
		Title:       lead.Title,
		Description: lead.Description,
		Status:      string(lead.Status),
		Value:       lead.Value,
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
	}
}

func toLeadDTOs(leads []*crm.Lead) []LeadDTO {
	dtos := make([]LeadDTO, len(leads))
	for i, lead := range leads {
		dtos[i] = toLeadDTO(lead)
	}
	return dtos
}
