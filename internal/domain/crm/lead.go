package crm

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crm/backend/internal/domain/shared"
)

// LeadStatus is the pipeline stage of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusConverted LeadStatus = "Converted"
	LeadStatusLost      LeadStatus = "Lost"
)

// Valid reports whether the status is one of the known pipeline stages.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a sales opportunity attached to exactly one customer. It has
// no owner of its own; access follows the parent customer.
type Lead struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID
	Title       string
	Description string
	Status      LeadStatus
	Value       decimal.Decimal
}

// NewLead creates a lead under the given customer. Title is required;
// status defaults to New and value to zero when not provided.
func NewLead(customerID uuid.UUID, title, description string, status LeadStatus, value decimal.Decimal) (*Lead, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewInvalidInputError("lead title is required")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewInvalidInputError("lead customer is required")
	}
	if status == "" {
		status = LeadStatusNew
	}
	if !status.Valid() {
		return nil, shared.NewInvalidInputError("invalid lead status")
	}
	if value.IsNegative() {
		return nil, shared.NewInvalidInputError("lead value cannot be negative")
	}

	lead := &Lead{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Title:             title,
		Description:       strings.TrimSpace(description),
		Status:            status,
		Value:             value,
	}

	lead.AddDomainEvent(NewLeadCreatedEvent(lead.ID, customerID))
	return lead, nil
}

// LeadUpdate carries partial changes to a lead. The parent customer is
// never changed.
type LeadUpdate struct {
	Title       *string
	Description *string
	Status      *LeadStatus
	Value       *decimal.Decimal
}

// Update applies a partial update.
func (l *Lead) Update(update LeadUpdate) error {
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return shared.NewInvalidInputError("lead title cannot be empty")
		}
		l.Title = title
	}
	if update.Description != nil {
		l.Description = strings.TrimSpace(*update.Description)
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return shared.NewInvalidInputError("invalid lead status")
		}
		l.Status = *update.Status
	}
	if update.Value != nil {
		if update.Value.IsNegative() {
			return shared.NewInvalidInputError("lead value cannot be negative")
		}
		l.Value = *update.Value
	}

	l.Touch()
	l.AddDomainEvent(NewLeadUpdatedEvent(l.ID, l.CustomerID))
	return nil
}

// MarkDeleted records the deletion event once the lead has been
// removed from storage.
func (l *Lead) MarkDeleted() {
	l.AddDomainEvent(NewLeadDeletedEvent(l.ID, l.CustomerID))
}
