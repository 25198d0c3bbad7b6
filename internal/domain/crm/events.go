package crm

import (
	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/shared"
)

// Event types raised by the crm aggregates.
const (
	EventCustomerCreated = "crm.customer.created"
	EventCustomerUpdated = "crm.customer.updated"
	EventCustomerDeleted = "crm.customer.deleted"
	EventLeadCreated     = "crm.lead.created"
	EventLeadUpdated     = "crm.lead.updated"
	EventLeadDeleted     = "crm.lead.deleted"
)

// CustomerCreatedEvent is raised when a customer is created.
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	OwnerID uuid.UUID
}

func NewCustomerCreatedEvent(customerID, ownerID uuid.UUID) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerCreated, customerID),
		OwnerID:         ownerID,
	}
}

// CustomerUpdatedEvent is raised when customer fields change.
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	OwnerID uuid.UUID
}

func NewCustomerUpdatedEvent(customerID, ownerID uuid.UUID) CustomerUpdatedEvent {
	return CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerUpdated, customerID),
		OwnerID:         ownerID,
	}
}

// CustomerDeletedEvent is raised after a customer and its leads are
// removed.
type CustomerDeletedEvent struct {
	shared.BaseDomainEvent
	OwnerID      uuid.UUID
	LeadsDeleted int64
}

func NewCustomerDeletedEvent(customerID, ownerID uuid.UUID, leadsDeleted int64) CustomerDeletedEvent {
	return CustomerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerDeleted, customerID),
		OwnerID:         ownerID,
		LeadsDeleted:    leadsDeleted,
	}
}

// LeadCreatedEvent is raised when a lead is created.
type LeadCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID
}

func NewLeadCreatedEvent(leadID, customerID uuid.UUID) LeadCreatedEvent {
	return LeadCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLeadCreated, leadID),
		CustomerID:      customerID,
	}
}

// LeadUpdatedEvent is raised when lead fields change.
type LeadUpdatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID
}

func NewLeadUpdatedEvent(leadID, customerID uuid.UUID) LeadUpdatedEvent {
	return LeadUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLeadUpdated, leadID),
		CustomerID:      customerID,
	}
}

// LeadDeletedEvent is raised when a lead is removed.
type LeadDeletedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID
}

func NewLeadDeletedEvent(leadID, customerID uuid.UUID) LeadDeletedEvent {
	return LeadDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLeadDeleted, leadID),
		CustomerID:      customerID,
	}
}
