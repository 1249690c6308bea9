package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutTemplate is a reusable ordered list of exercises. Every referenced
// exercise must be usable by the template's creator at creation time.
type WorkoutTemplate struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedBy   uuid.UUID
	ExerciseIDs []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
