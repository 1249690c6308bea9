package workoutlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Update re-evaluates the submission and replaces the log wholesale: header
// fields are overwritten and all prior entries are deleted before the new
// ones are stored. Only the log's owner may update it.
func (s *Service) Update(ctx context.Context, user domain.User, logID uuid.UUID, input Input) (domain.WorkoutLog, error) {
	if err := input.Validate(); err != nil {
		return domain.WorkoutLog{}, err
	}

	existing, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return domain.WorkoutLog{}, fmt.Errorf("get workout log: %w", err)
	}
	if existing.UserID != user.ID {
		return domain.WorkoutLog{}, fmt.Errorf("workout log %s: %w", logID, domain.ErrForbidden)
	}

	var updated domain.WorkoutLog
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		eval, err := s.evaluate(txCtx, user, input.Exercises)
		if err != nil {
			return err
		}

		updated = existing
		updated.Name = input.Name
		updated.Date = input.Date
		updated.DurationMinutes = input.DurationMinutes
		updated.TotalLoadKg = eval.TotalLoadKg
		updated.RecordCount = eval.RecordCount
		updated.UpdatedAt = time.Now()

		if err := s.logs.UpdateHeader(txCtx, updated); err != nil {
			return fmt.Errorf("update workout log: %w", err)
		}

		entries := entriesFromSummaries(eval.Exercises)
		if err := s.logs.ReplaceEntries(txCtx, logID, entries); err != nil {
			return fmt.Errorf("replace log entries: %w", err)
		}
		updated.Exercises = entries

		return nil
	})
	if err != nil {
		return domain.WorkoutLog{}, err
	}

	s.log.InfoContext(ctx, "workout log updated",
		slog.String("log_id", logID.String()),
		slog.String("user_id", user.ID.String()),
		slog.Float64("total_load_kg", updated.TotalLoadKg),
		slog.Int("personal_records", updated.RecordCount),
	)

	return updated, nil
}
