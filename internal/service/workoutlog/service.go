// Package workoutlog implements the workout-log business logic: evaluating
// submitted exercises with their category strategies, maintaining personal
// records, and persisting logs all-or-nothing.
package workoutlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exerciseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Exercise, error)
}

type logRepo interface {
	Create(ctx context.Context, log domain.WorkoutLog) (domain.WorkoutLog, error)
	UpdateHeader(ctx context.Context, log domain.WorkoutLog) error
	ReplaceEntries(ctx context.Context, logID uuid.UUID, entries []domain.LoggedExercise) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutLog, error)
	ListAll(ctx context.Context) ([]domain.WorkoutLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recordStore interface {
	// Upsert writes the record if it is new or strictly better than the
	// stored one, atomically, and reports whether a write happened.
	Upsert(ctx context.Context, record domain.PersonalRecord) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the workout-log business logic.
type Service struct {
	exercises exerciseRepo
	logs      logRepo
	records   recordStore
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new workout-log service.
func NewService(
	log *slog.Logger,
	exercises exerciseRepo,
	logs logRepo,
	records recordStore,
	tx txManager,
) *Service {
	return &Service{
		exercises: exercises,
		logs:      logs,
		records:   records,
		tx:        tx,
		log:       log.With("service", "workoutlog"),
	}
}
