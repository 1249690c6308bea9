package workoutlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Get returns one workout log with its entries. The owner and admins may
// read it.
func (s *Service) Get(ctx context.Context, user domain.User, logID uuid.UUID) (domain.WorkoutLog, error) {
	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return domain.WorkoutLog{}, fmt.Errorf("get workout log: %w", err)
	}
	if log.UserID != user.ID && !user.IsAdmin() {
		return domain.WorkoutLog{}, fmt.Errorf("workout log %s: %w", logID, domain.ErrForbidden)
	}
	return log, nil
}

// List returns the user's workout logs. Admins see everyone's logs.
func (s *Service) List(ctx context.Context, user domain.User) ([]domain.WorkoutLog, error) {
	if user.IsAdmin() {
		logs, err := s.logs.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list workout logs: %w", err)
		}
		return logs, nil
	}

	logs, err := s.logs.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}
