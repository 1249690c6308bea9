package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the account on whose behalf workouts are logged. Services take the
// acting user as an explicit parameter; there is no ambient identity.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      UserRole
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool { return u.Role == UserRoleAdmin }
