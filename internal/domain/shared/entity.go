package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides identity and audit fields common to all entities.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// NewBaseEntity creates a base entity with a fresh identity.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

// Touch bumps the update timestamp and optimistic-lock version.
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now().UTC()
	e.Version++
}

// Equals compares entities by identity.
func (e *BaseEntity) Equals(other *BaseEntity) bool {
	if other == nil {
		return false
	}
	return e.ID == other.ID
}
