// Package measurement implements body-measurement tracking: measure types
// and per-user measurement history.
package measurement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type typeRepo interface {
	Create(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.MeasureType, error)
	List(ctx context.Context) ([]domain.MeasureType, error)
}

type measurementRepo interface {
	Create(ctx context.Context, m domain.Measurement) (domain.Measurement, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Measurement, error)
	Update(ctx context.Context, m domain.Measurement) (domain.Measurement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, userID, typeID uuid.UUID) ([]domain.Measurement, error)
}

// Service implements the measurement business logic.
type Service struct {
	types        typeRepo
	measurements measurementRepo
	log          *slog.Logger
}

// NewService creates a new measurement service.
func NewService(log *slog.Logger, types typeRepo, measurements measurementRepo) *Service {
	return &Service{
		types:        types,
		measurements: measurements,
		log:          log.With("service", "measurement"),
	}
}

// CreateType registers a new measure type. Admin only.
func (s *Service) CreateType(ctx context.Context, user domain.User, name, unit string) (domain.MeasureType, error) {
	if !user.IsAdmin() {
		return domain.MeasureType{}, fmt.Errorf("create measure type: %w", domain.ErrForbidden)
	}
	if strings.TrimSpace(name) == "" {
		return domain.MeasureType{}, domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(unit) == "" {
		return domain.MeasureType{}, domain.NewValidationError("unit", "is required")
	}

	now := time.Now()
	created, err := s.types.Create(ctx, domain.MeasureType{
		ID:        uuid.New(),
		Name:      name,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.MeasureType{}, fmt.Errorf("create measure type: %w", err)
	}

	s.log.InfoContext(ctx, "measure type created", slog.String("name", name))
	return created, nil
}

// ListTypes returns all registered measure types.
func (s *Service) ListTypes(ctx context.Context) ([]domain.MeasureType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list measure types: %w", err)
	}
	return types, nil
}

// Record stores a measurement value for the user.
func (s *Service) Record(ctx context.Context, user domain.User, input RecordInput) (domain.Measurement, error) {
	if err := input.Validate(); err != nil {
		return domain.Measurement{}, err
	}

	if _, err := s.types.GetByID(ctx, input.MeasureTypeID); err != nil {
		return domain.Measurement{}, fmt.Errorf("get measure type: %w", err)
	}

	now := time.Now()
	created, err := s.measurements.Create(ctx, domain.Measurement{
		ID:            uuid.New(),
		UserID:        user.ID,
		MeasureTypeID: input.MeasureTypeID,
		Value:         input.Value,
		MeasuredAt:    input.MeasuredAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return domain.Measurement{}, fmt.Errorf("create measurement: %w", err)
	}
	return created, nil
}

// Update changes the value or date of the user's own measurement.
func (s *Service) Update(ctx context.Context, user domain.User, id uuid.UUID, input UpdateInput) (domain.Measurement, error) {
	if err := input.Validate(); err != nil {
		return domain.Measurement{}, err
	}

	m, err := s.measurements.GetByID(ctx, id)
	if err != nil {
		return domain.Measurement{}, fmt.Errorf("get measurement: %w", err)
	}
	if m.UserID != user.ID {
		return domain.Measurement{}, fmt.Errorf("measurement %s: %w", id, domain.ErrForbidden)
	}

	if input.Value != nil {
		m.Value = *input.Value
	}
	if input.MeasuredAt != nil {
		m.MeasuredAt = *input.MeasuredAt
	}
	m.UpdatedAt = time.Now()

	updated, err := s.measurements.Update(ctx, m)
	if err != nil {
		return domain.Measurement{}, fmt.Errorf("update measurement: %w", err)
	}
	return updated, nil
}

// Delete removes the user's own measurement.
func (s *Service) Delete(ctx context.Context, user domain.User, id uuid.UUID) error {
	m, err := s.measurements.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get measurement: %w", err)
	}
	if m.UserID != user.ID {
		return fmt.Errorf("measurement %s: %w", id, domain.ErrForbidden)
	}

	if err := s.measurements.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	return nil
}

// History returns the user's measurements of one type, newest first.
func (s *Service) History(ctx context.Context, user domain.User, typeID uuid.UUID) ([]domain.Measurement, error) {
	history, err := s.measurements.History(ctx, user.ID, typeID)
	if err != nil {
		return nil, fmt.Errorf("measurement history: %w", err)
	}
	return history, nil
}
