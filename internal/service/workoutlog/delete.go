package workoutlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Delete removes a workout log and its entries. Only the owner may delete.
// Personal records earned through the log are kept.
func (s *Service) Delete(ctx context.Context, user domain.User, logID uuid.UUID) error {
	existing, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return fmt.Errorf("get workout log: %w", err)
	}
	if existing.UserID != user.ID {
		return fmt.Errorf("workout log %s: %w", logID, domain.ErrForbidden)
	}

	if err := s.logs.Delete(ctx, logID); err != nil {
		return fmt.Errorf("delete workout log: %w", err)
	}

	s.log.InfoContext(ctx, "workout log deleted",
		slog.String("log_id", logID.String()),
		slog.String("user_id", user.ID.String()),
	)

	return nil
}
