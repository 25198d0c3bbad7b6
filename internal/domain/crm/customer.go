// Package crm contains the customer and lead aggregates.
package crm

import (
	"strings"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/shared"
)

// Customer is a company contact owned by the user who created it.
type Customer struct {
	shared.OwnedAggregateRoot
	Name    string
	Email   string
	Phone   string
	Company string
}

// NewCustomer creates a customer owned by ownerID. Only the name is
// required; the remaining contact fields are optional.
func NewCustomer(ownerID uuid.UUID, name, email, phone, company string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewInvalidInputError("customer name is required")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewInvalidInputError("customer owner is required")
	}

	customer := &Customer{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
		Email:              strings.TrimSpace(email),
		Phone:              strings.TrimSpace(phone),
		Company:            strings.TrimSpace(company),
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer.ID, ownerID))
	return customer, nil
}

// CustomerUpdate carries partial changes. Nil fields are left as-is;
// set fields overwrite, including with the empty string.
type CustomerUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// Update applies a partial update. The owner is never changed.
func (c *Customer) Update(update CustomerUpdate) error {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return shared.NewInvalidInputError("customer name cannot be empty")
		}
		c.Name = name
	}
	if update.Email != nil {
		c.Email = strings.TrimSpace(*update.Email)
	}
	if update.Phone != nil {
		c.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Company != nil {
		c.Company = strings.TrimSpace(*update.Company)
	}

	c.Touch()
	c.AddDomainEvent(NewCustomerUpdatedEvent(c.ID, c.OwnerID))
	return nil
}

// MarkDeleted records the deletion event once the customer and its
// leads have been removed from storage.
func (c *Customer) MarkDeleted(leadsDeleted int64) {
	c.AddDomainEvent(NewCustomerDeletedEvent(c.ID, c.OwnerID, leadsDeleted))
}
