package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is raised by aggregates when something meaningful happens.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// BaseDomainEvent provides the common event envelope.
type BaseDomainEvent struct {
	ID         uuid.UUID
	Type       string
	Aggregate  uuid.UUID
	OccurredOn time.Time
}

// NewBaseDomainEvent creates an event envelope for the given aggregate.
func NewBaseDomainEvent(eventType string, aggregateID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Aggregate:  aggregateID,
		OccurredOn: time.Now().UTC(),
	}
}

func (e BaseDomainEvent) EventID() uuid.UUID     { return e.ID }
func (e BaseDomainEvent) EventType() string      { return e.Type }
func (e BaseDomainEvent) AggregateID() uuid.UUID { return e.Aggregate }
func (e BaseDomainEvent) OccurredAt() time.Time  { return e.OccurredOn }
