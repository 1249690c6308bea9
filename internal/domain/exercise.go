package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a named movement definition. Predefined exercises carry no
// owner (or an admin owner) and are usable by everyone; user-created
// exercises are private to their owner.
type Exercise struct {
	ID           uuid.UUID
	Name         string
	Category     Category
	Description  *string
	Instructions *string
	OwnerID      *uuid.UUID
	// OwnerIsAdmin is denormalized from the owner row when reading.
	OwnerIsAdmin bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsableBy reports whether the user may log or reference this exercise:
// it is predefined, admin-provided, or owned by the user.
func (e Exercise) UsableBy(u User) bool {
	if e.OwnerID == nil || e.OwnerIsAdmin {
		return true
	}
	return *e.OwnerID == u.ID
}

// OwnedBy reports whether the user is the exercise's owner.
func (e Exercise) OwnedBy(u User) bool {
	return e.OwnerID != nil && *e.OwnerID == u.ID
}
