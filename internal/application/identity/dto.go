package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/identity"
)

// RegisterInput carries the fields for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials. IP is recorded for auditing.
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// LogoutInput identifies the token being revoked.
type LogoutInput struct {
	TokenJTI  string
	ExpiresAt time.Time
}

// UserDTO is the service-level view of a user. It never carries the
// password hash.
type UserDTO struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserDTO
}

func toUserDTO(user *identity.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
