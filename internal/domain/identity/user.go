// Package identity contains the user aggregate and the ownership
// access policy applied across the CRM.
package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/crm/backend/internal/domain/shared"
)

const bcryptCost = 12

// Role determines what a user may access beyond their own records.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account that owns CRM records.
type User struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser creates a user with a hashed password and the default role.
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, shared.NewInvalidInputError("name is required")
	}
	if email == "" {
		return nil, shared.NewInvalidInputError("email is required")
	}
	if password == "" {
		return nil, shared.NewInvalidInputError("password is required")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Role:              RoleUser,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user.ID, user.Email))
	return user, nil
}

// SetPassword hashes and stores the given password.
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewInvalidInputError("password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewInternalError(err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Actor returns the access-control view of this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
