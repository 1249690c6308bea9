package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrUnknownCategory means an exercise row carries a category name the
	// scoring code has no strategy for. This is a data-integrity fault, not
	// a user mistake, and it fails the whole submission.
	ErrUnknownCategory = errors.New("unknown exercise category")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ExerciseProblem records why one exercise entry in a submitted workout was
// rejected. Err wraps ErrForbidden or ErrValidation.
type ExerciseProblem struct {
	Index      int
	ExerciseID uuid.UUID
	Err        error
}

func (p ExerciseProblem) Error() string {
	return fmt.Sprintf("exercise %d (%s): %v", p.Index, p.ExerciseID, p.Err)
}

func (p ExerciseProblem) Unwrap() error { return p.Err }

// EvaluationError aggregates every per-exercise problem found while
// evaluating a submitted workout. Its presence means nothing from the
// submission was persisted.
type EvaluationError struct {
	Problems []ExerciseProblem
}

func (e *EvaluationError) Error() string {
	if len(e.Problems) == 1 {
		return "workout evaluation: " + e.Problems[0].Error()
	}
	return fmt.Sprintf("workout evaluation: %d exercises rejected", len(e.Problems))
}

func (e *EvaluationError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i := range e.Problems {
		errs[i] = e.Problems[i]
	}
	return errs
}
