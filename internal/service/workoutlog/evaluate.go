package workoutlog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
	"github.com/heartmarshall/fitlog-backend/internal/service/workoutlog/category"
)

// Evaluate scores a submission without creating a workout log. Personal
// records are still claimed: the upserts run in a transaction that is rolled
// back if any entry is rejected, so a partially valid submission changes
// nothing.
func (s *Service) Evaluate(ctx context.Context, user domain.User, entries []ExerciseEntryInput) (Evaluation, error) {
	var eval Evaluation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var evalErr error
		eval, evalErr = s.evaluate(txCtx, user, entries)
		return evalErr
	})
	if err != nil {
		return Evaluation{}, err
	}
	return eval, nil
}

// evaluate processes entries in submission order. Permission and
// invalid-input problems are collected per entry and reported together;
// an unknown category or a storage failure aborts immediately. Callers must
// run it inside a transaction so that collected problems roll back any
// record upserts already performed for earlier entries.
func (s *Service) evaluate(ctx context.Context, user domain.User, entries []ExerciseEntryInput) (Evaluation, error) {
	var (
		eval     Evaluation
		problems []domain.ExerciseProblem
	)

	for i, entry := range entries {
		exercise, err := s.exercises.GetByID(ctx, entry.ExerciseID)
		if err != nil {
			return Evaluation{}, fmt.Errorf("get exercise %s: %w", entry.ExerciseID, err)
		}

		if !exercise.UsableBy(user) {
			problems = append(problems, domain.ExerciseProblem{
				Index:      i,
				ExerciseID: entry.ExerciseID,
				Err:        fmt.Errorf("no permission to use exercise %q: %w", exercise.Name, domain.ErrForbidden),
			})
			continue
		}

		strat, err := category.ForCategory(exercise.Category)
		if err != nil {
			// Unknown category is a data-integrity fault, not a user
			// mistake: fail the whole submission.
			return Evaluation{}, fmt.Errorf("exercise %q: %w", exercise.Name, err)
		}

		sets := toPerformanceSets(entry.Sets)

		summary, hasBest, err := strat.BestSet(sets)
		if err != nil {
			problems = append(problems, domain.ExerciseProblem{
				Index:      i,
				ExerciseID: entry.ExerciseID,
				Err:        err,
			})
			continue
		}

		eval.TotalLoadKg += strat.TotalLoad(sets)

		if candidate, ok := strat.RecordCandidate(sets); ok {
			candidate.UserID = user.ID
			candidate.ExerciseID = exercise.ID
			improved, err := s.records.Upsert(ctx, candidate)
			if err != nil {
				return Evaluation{}, fmt.Errorf("upsert personal record: %w", err)
			}
			if improved {
				eval.RecordCount++
			}
		}

		var bestSet *string
		if hasBest {
			bestSet = &summary
		}
		eval.Exercises = append(eval.Exercises, ExerciseSummary{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			BestSet:      bestSet,
			Sets:         sets,
		})
	}

	if len(problems) > 0 {
		return Evaluation{}, &domain.EvaluationError{Problems: problems}
	}
	return eval, nil
}
