// Package history implements read-side queries over logged workouts:
// per-user history, date-range search, and per-exercise history and records.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type logRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutLog, error)
	ListAll(ctx context.Context) ([]domain.WorkoutLog, error)
	SearchByDate(ctx context.Context, userID uuid.UUID, r domain.DateRange) ([]domain.WorkoutLog, error)
	ListByUserAndExercise(ctx context.Context, userID, exerciseID uuid.UUID) ([]domain.WorkoutLog, error)
}

type exerciseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Exercise, error)
}

type recordRepo interface {
	ListByUserAndExercise(ctx context.Context, userID, exerciseID uuid.UUID) ([]domain.PersonalRecord, error)
}

// Service implements history queries.
type Service struct {
	logs      logRepo
	exercises exerciseRepo
	records   recordRepo
	log       *slog.Logger
}

// NewService creates a new history service.
func NewService(log *slog.Logger, logs logRepo, exercises exerciseRepo, records recordRepo) *Service {
	return &Service{
		logs:      logs,
		exercises: exercises,
		records:   records,
		log:       log.With("service", "history"),
	}
}

// WorkoutHistory returns the user's workout logs with entries. Admins see
// everyone's logs.
func (s *Service) WorkoutHistory(ctx context.Context, user domain.User) ([]domain.WorkoutLog, error) {
	if user.IsAdmin() {
		logs, err := s.logs.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("workout history: %w", err)
		}
		return logs, nil
	}

	logs, err := s.logs.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("workout history: %w", err)
	}
	return logs, nil
}

// SearchByDate returns the user's workout logs within the date range.
func (s *Service) SearchByDate(ctx context.Context, user domain.User, r domain.DateRange) ([]domain.WorkoutLog, error) {
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return nil, domain.NewValidationError("date_range", "to must not be before from")
	}

	logs, err := s.logs.SearchByDate(ctx, user.ID, r)
	if err != nil {
		return nil, fmt.Errorf("search workout logs: %w", err)
	}
	return logs, nil
}

// ExerciseHistory returns the user's logs that include the given exercise.
// The exercise must be usable by the caller.
func (s *Service) ExerciseHistory(ctx context.Context, user domain.User, exerciseID uuid.UUID) ([]domain.WorkoutLog, error) {
	exercise, err := s.exercises.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	if !exercise.UsableBy(user) {
		return nil, fmt.Errorf("exercise %s: %w", exerciseID, domain.ErrForbidden)
	}

	logs, err := s.logs.ListByUserAndExercise(ctx, user.ID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}
	return logs, nil
}

// ExerciseRecords returns the user's personal records for one exercise,
// one per record kind at most.
func (s *Service) ExerciseRecords(ctx context.Context, user domain.User, exerciseID uuid.UUID) ([]domain.PersonalRecord, error) {
	exercise, err := s.exercises.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	if !exercise.UsableBy(user) {
		return nil, fmt.Errorf("exercise %s: %w", exerciseID, domain.ErrForbidden)
	}

	records, err := s.records.ListByUserAndExercise(ctx, user.ID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise records: %w", err)
	}
	return records, nil
}
