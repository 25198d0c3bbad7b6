package identity

import "github.com/google/uuid"

// Actor is the authenticated principal making a request. It carries
// only what access decisions need.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess decides whether the actor may read or mutate a record
// owned by ownerID. Admins may access any record; everyone else only
// their own.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.ID == ownerID
}

// ScopeOwner returns the owner the actor's list queries must be
// restricted to, or uuid.Nil when the actor sees all records.
func (a Actor) ScopeOwner() uuid.UUID {
	if a.IsAdmin() {
		return uuid.Nil
	}
	return a.ID
}
