package domain

import (
	"time"

	"github.com/google/uuid"
)

// MeasureType is a body metric that can be tracked, e.g. weight or waist.
type MeasureType struct {
	ID        uuid.UUID
	Name      string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Measurement is one recorded value of a measure type for a user.
type Measurement struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	MeasureTypeID uuid.UUID
	Value         float64
	MeasuredAt    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
