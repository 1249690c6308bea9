package workoutlog

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// ExerciseSummary is the evaluated outcome for one exercise entry, in the
// order it was submitted.
type ExerciseSummary struct {
	ExerciseID   uuid.UUID
	ExerciseName string
	BestSet      *string
	Sets         []domain.PerformanceSet
}

// Evaluation is the aggregate outcome of scoring a full submission.
// RecordCount is the number of personal records the submission set or
// improved.
type Evaluation struct {
	TotalLoadKg float64
	RecordCount int
	Exercises   []ExerciseSummary
}

func entriesFromSummaries(summaries []ExerciseSummary) []domain.LoggedExercise {
	entries := make([]domain.LoggedExercise, len(summaries))
	for i, sum := range summaries {
		entries[i] = domain.LoggedExercise{
			ID:           uuid.New(),
			ExerciseID:   sum.ExerciseID,
			ExerciseName: sum.ExerciseName,
			BestSet:      sum.BestSet,
			Position:     i + 1,
			Sets:         sum.Sets,
		}
	}
	return entries
}
