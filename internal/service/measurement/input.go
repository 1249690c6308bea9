package measurement

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// RecordInput carries one new measurement.
type RecordInput struct {
	MeasureTypeID uuid.UUID
	Value         float64
	MeasuredAt    time.Time
}

// Validate checks the input.
func (in RecordInput) Validate() error {
	var errs []domain.FieldError

	if in.MeasureTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "measure_type_id", Message: "is required"})
	}
	if in.Value <= 0 {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be positive"})
	}
	if in.MeasuredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "measured_at", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput carries partial changes to a measurement.
type UpdateInput struct {
	Value      *float64
	MeasuredAt *time.Time
}

// Validate checks the provided fields.
func (in UpdateInput) Validate() error {
	if in.Value != nil && *in.Value <= 0 {
		return domain.NewValidationError("value", "must be positive")
	}
	if in.MeasuredAt != nil && in.MeasuredAt.IsZero() {
		return domain.NewValidationError("measured_at", "must not be zero")
	}
	return nil
}
