package workoutlog

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// SetInput is one performed set as submitted by the caller. Which optional
// fields are required depends on the exercise's category and is checked
// during evaluation, not here.
type SetInput struct {
	SetNumber        int
	Value            *float64
	Reps             *int
	TimeSpentSeconds *int
}

// ExerciseEntryInput is one exercise with its sets, in submission order.
type ExerciseEntryInput struct {
	ExerciseID uuid.UUID
	Sets       []SetInput
}

// Input carries the fields of a workout log for both create and update.
// Updates replace the log wholesale, so the shapes are identical.
type Input struct {
	Name            string
	Date            time.Time
	DurationMinutes *int
	Exercises       []ExerciseEntryInput
}

// Validate checks structural requirements. Category-dependent set
// requirements are evaluated per exercise later.
func (in Input) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if in.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "is required"})
	}
	for i, entry := range in.Exercises {
		if entry.ExerciseID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "exercises", Message: "entry " + strconv.Itoa(i) + ": exercise id is required"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func toPerformanceSets(sets []SetInput) []domain.PerformanceSet {
	out := make([]domain.PerformanceSet, len(sets))
	for i, s := range sets {
		number := s.SetNumber
		if number == 0 {
			number = i + 1
		}
		out[i] = domain.PerformanceSet{
			SetNumber:        number,
			Value:            s.Value,
			Reps:             s.Reps,
			TimeSpentSeconds: s.TimeSpentSeconds,
		}
	}
	return out
}
