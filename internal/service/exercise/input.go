package exercise

import (
	"strings"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// CreateInput carries the fields of a new exercise.
type CreateInput struct {
	Name         string
	Category     domain.Category
	Description  *string
	Instructions *string
}

// Validate checks the input.
func (in CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if !in.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category name"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput carries partial changes to an exercise; nil fields are left
// unchanged.
type UpdateInput struct {
	Name         *string
	Category     *domain.Category
	Description  *string
	Instructions *string
}

// Validate checks the provided fields.
func (in UpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if in.Category != nil && !in.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category name"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
