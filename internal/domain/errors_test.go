package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "is required")
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError must unwrap to ErrValidation")
	}
}

func TestEvaluationError_Unwrap(t *testing.T) {
	t.Parallel()

	evalErr := &EvaluationError{Problems: []ExerciseProblem{
		{
			Index:      0,
			ExerciseID: uuid.New(),
			Err:        fmt.Errorf("no permission to use exercise: %w", ErrForbidden),
		},
		{
			Index:      2,
			ExerciseID: uuid.New(),
			Err:        NewValidationError("sets", "value and reps are required"),
		},
	}}

	if !errors.Is(evalErr, ErrForbidden) {
		t.Error("EvaluationError with a permission problem must match ErrForbidden")
	}
	if !errors.Is(evalErr, ErrValidation) {
		t.Error("EvaluationError with an invalid-input problem must match ErrValidation")
	}
	if errors.Is(evalErr, ErrNotFound) {
		t.Error("EvaluationError must not match unrelated sentinels")
	}
}

func TestEvaluationError_Error(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	one := &EvaluationError{Problems: []ExerciseProblem{{Index: 1, ExerciseID: id, Err: ErrForbidden}}}
	if one.Error() == "" {
		t.Error("single-problem message must not be empty")
	}

	many := &EvaluationError{Problems: make([]ExerciseProblem, 3)}
	if many.Error() != "workout evaluation: 3 exercises rejected" {
		t.Errorf("unexpected multi-problem message: %q", many.Error())
	}
}
