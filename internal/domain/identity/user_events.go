package identity

import (
	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/shared"
)

// Event types raised by the user aggregate.
const (
	EventUserRegistered = "identity.user.registered"
	EventUserLoggedIn   = "identity.user.logged_in"
)

// UserRegisteredEvent is raised when a new account is created.
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email string
}

// NewUserRegisteredEvent creates a registration event.
func NewUserRegisteredEvent(userID uuid.UUID, email string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserRegistered, userID),
		Email:           email,
	}
}

// UserLoggedInEvent is raised on successful authentication.
type UserLoggedInEvent struct {
	shared.BaseDomainEvent
	IP string
}

// NewUserLoggedInEvent creates a login event.
func NewUserLoggedInEvent(userID uuid.UUID, ip string) UserLoggedInEvent {
	return UserLoggedInEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserLoggedIn, userID),
		IP:              ip,
	}
}
