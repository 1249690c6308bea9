// Package exercise implements CRUD and search for exercise definitions.
package exercise

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type repo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Exercise, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error)
	ListAll(ctx context.Context) ([]domain.Exercise, error)
	Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	Update(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, userID uuid.UUID, filter domain.ExerciseFilter) ([]domain.Exercise, error)
}

// Service implements the exercise business logic.
type Service struct {
	exercises repo
	log       *slog.Logger
}

// NewService creates a new exercise service.
func NewService(log *slog.Logger, exercises repo) *Service {
	return &Service{
		exercises: exercises,
		log:       log.With("service", "exercise"),
	}
}

// List returns the exercises the user can log: predefined, admin-provided
// and their own. Admins see everything.
func (s *Service) List(ctx context.Context, user domain.User) ([]domain.Exercise, error) {
	if user.IsAdmin() {
		exercises, err := s.exercises.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list exercises: %w", err)
		}
		return exercises, nil
	}

	exercises, err := s.exercises.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// Get returns one exercise if the user may use it.
func (s *Service) Get(ctx context.Context, user domain.User, id uuid.UUID) (domain.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	if !exercise.UsableBy(user) {
		return domain.Exercise{}, fmt.Errorf("exercise %s: %w", id, domain.ErrForbidden)
	}
	return exercise, nil
}

// Instructions returns the exercise's instructions, with a fallback text for
// user-created exercises that carry none.
func (s *Service) Instructions(ctx context.Context, user domain.User, id uuid.UUID) (string, error) {
	exercise, err := s.Get(ctx, user, id)
	if err != nil {
		return "", err
	}
	if exercise.Instructions == nil || *exercise.Instructions == "" {
		return "Instruction not available, as it is not predefined", nil
	}
	return *exercise.Instructions, nil
}

// Create stores a new exercise owned by the caller.
func (s *Service) Create(ctx context.Context, user domain.User, input CreateInput) (domain.Exercise, error) {
	if err := input.Validate(); err != nil {
		return domain.Exercise{}, err
	}

	created, err := s.exercises.Create(ctx, domain.Exercise{
		ID:           uuid.New(),
		Name:         input.Name,
		Category:     input.Category,
		Description:  input.Description,
		Instructions: input.Instructions,
		OwnerID:      &user.ID,
		OwnerIsAdmin: user.IsAdmin(),
	})
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("create exercise: %w", err)
	}

	s.log.InfoContext(ctx, "exercise created",
		slog.String("exercise_id", created.ID.String()),
		slog.String("user_id", user.ID.String()),
		slog.String("category", created.Category.String()),
	)

	return created, nil
}

// Update applies partial changes. The owner and admins may update.
func (s *Service) Update(ctx context.Context, user domain.User, id uuid.UUID, input UpdateInput) (domain.Exercise, error) {
	if err := input.Validate(); err != nil {
		return domain.Exercise{}, err
	}

	exercise, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	if !exercise.OwnedBy(user) && !user.IsAdmin() {
		return domain.Exercise{}, fmt.Errorf("exercise %s: %w", id, domain.ErrForbidden)
	}

	if input.Name != nil {
		exercise.Name = *input.Name
	}
	if input.Category != nil {
		exercise.Category = *input.Category
	}
	if input.Description != nil {
		exercise.Description = input.Description
	}
	if input.Instructions != nil {
		exercise.Instructions = input.Instructions
	}

	updated, err := s.exercises.Update(ctx, exercise)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("update exercise: %w", err)
	}
	return updated, nil
}

// Delete removes an exercise. The owner and admins may delete.
func (s *Service) Delete(ctx context.Context, user domain.User, id uuid.UUID) error {
	exercise, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get exercise: %w", err)
	}
	if !exercise.OwnedBy(user) && !user.IsAdmin() {
		return fmt.Errorf("exercise %s: %w", id, domain.ErrForbidden)
	}

	if err := s.exercises.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	s.log.InfoContext(ctx, "exercise deleted",
		slog.String("exercise_id", id.String()),
		slog.String("user_id", user.ID.String()),
	)

	return nil
}

// Search returns the user's usable exercises matching the filter.
func (s *Service) Search(ctx context.Context, user domain.User, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category name")
	}

	exercises, err := s.exercises.Search(ctx, user.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	return exercises, nil
}
