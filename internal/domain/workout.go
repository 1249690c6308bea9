package domain

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceSet is one recorded set of an exercise within a workout log.
// Which fields must be present depends on the exercise's category: Strength
// needs Value+Reps, Cardio needs Value+TimeSpentSeconds, Bodyweight needs
// Reps, Flexibility needs TimeSpentSeconds.
type PerformanceSet struct {
	SetNumber        int
	Value            *float64 // weight in kg or distance in km
	Reps             *int
	TimeSpentSeconds *int
}

// LoggedExercise is one exercise entry inside a workout log, with its sets
// and the rendered best-set summary computed at evaluation time.
type LoggedExercise struct {
	ID           uuid.UUID
	ExerciseID   uuid.UUID
	ExerciseName string
	BestSet      *string
	Position     int
	Sets         []PerformanceSet
}

// WorkoutLog is one logged workout. TotalLoadKg and RecordCount are derived
// fields, recomputed wholesale on every create and update.
type WorkoutLog struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Date            time.Time
	DurationMinutes *int
	TotalLoadKg     float64
	RecordCount     int
	Exercises       []LoggedExercise
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
