package workoutlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Create evaluates the submission and persists the log with its entries and
// any personal-record updates in one transaction. If any entry is rejected,
// nothing is persisted.
func (s *Service) Create(ctx context.Context, user domain.User, input Input) (domain.WorkoutLog, error) {
	if err := input.Validate(); err != nil {
		return domain.WorkoutLog{}, err
	}

	var created domain.WorkoutLog
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		eval, err := s.evaluate(txCtx, user, input.Exercises)
		if err != nil {
			return err
		}

		now := time.Now()
		created, err = s.logs.Create(txCtx, domain.WorkoutLog{
			ID:              uuid.New(),
			UserID:          user.ID,
			Name:            input.Name,
			Date:            input.Date,
			DurationMinutes: input.DurationMinutes,
			TotalLoadKg:     eval.TotalLoadKg,
			RecordCount:     eval.RecordCount,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create workout log: %w", err)
		}

		entries := entriesFromSummaries(eval.Exercises)
		if err := s.logs.ReplaceEntries(txCtx, created.ID, entries); err != nil {
			return fmt.Errorf("store log entries: %w", err)
		}
		created.Exercises = entries

		return nil
	})
	if err != nil {
		return domain.WorkoutLog{}, err
	}

	s.log.InfoContext(ctx, "workout log created",
		slog.String("log_id", created.ID.String()),
		slog.String("user_id", user.ID.String()),
		slog.Float64("total_load_kg", created.TotalLoadKg),
		slog.Int("personal_records", created.RecordCount),
	)

	return created, nil
}
