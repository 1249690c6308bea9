// Package template implements reusable workout templates. Every exercise a
// template references must be usable by its creator.
package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type templateRepo interface {
	Create(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error)
	Update(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutTemplate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutTemplate, error)
	ListAll(ctx context.Context) ([]domain.WorkoutTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type exerciseRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Exercise, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the workout-template business logic.
type Service struct {
	templates templateRepo
	exercises exerciseRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new template service.
func NewService(log *slog.Logger, templates templateRepo, exercises exerciseRepo, tx txManager) *Service {
	return &Service{
		templates: templates,
		exercises: exercises,
		tx:        tx,
		log:       log.With("service", "template"),
	}
}

// Input carries the fields of a template for create and update.
type Input struct {
	Name        string
	Description *string
	ExerciseIDs []uuid.UUID
}

// Validate checks structural requirements.
func (in Input) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if len(in.ExerciseIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "exercise_ids", Message: "at least one exercise is required"})
	}
	seen := make(map[uuid.UUID]bool, len(in.ExerciseIDs))
	for _, id := range in.ExerciseIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "exercise_ids", Message: "exercise id is required"})
			break
		}
		if seen[id] {
			errs = append(errs, domain.FieldError{Field: "exercise_ids", Message: "duplicate exercise id " + id.String()})
			break
		}
		seen[id] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// checkExercises verifies that every referenced exercise exists and is
// usable by the caller.
func (s *Service) checkExercises(ctx context.Context, user domain.User, ids []uuid.UUID) error {
	exercises, err := s.exercises.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get exercises: %w", err)
	}

	found := make(map[uuid.UUID]domain.Exercise, len(exercises))
	for _, e := range exercises {
		found[e.ID] = e
	}

	for _, id := range ids {
		e, ok := found[id]
		if !ok {
			return fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
		}
		if !e.UsableBy(user) {
			return fmt.Errorf("exercise %q: %w", e.Name, domain.ErrForbidden)
		}
	}
	return nil
}

// Create stores a new template owned by the caller.
func (s *Service) Create(ctx context.Context, user domain.User, input Input) (domain.WorkoutTemplate, error) {
	if err := input.Validate(); err != nil {
		return domain.WorkoutTemplate{}, err
	}
	if err := s.checkExercises(ctx, user, input.ExerciseIDs); err != nil {
		return domain.WorkoutTemplate{}, err
	}

	now := time.Now()
	var created domain.WorkoutTemplate
	// Template row and exercise links land in one transaction.
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.templates.Create(ctx, domain.WorkoutTemplate{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
			CreatedBy:   user.ID,
			ExerciseIDs: input.ExerciseIDs,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		return domain.WorkoutTemplate{}, fmt.Errorf("create template: %w", err)
	}

	s.log.InfoContext(ctx, "template created",
		slog.String("template_id", created.ID.String()),
		slog.String("user_id", user.ID.String()),
		slog.Int("exercises", len(created.ExerciseIDs)),
	)

	return created, nil
}

// Update rewrites a template. Only its creator may update it.
func (s *Service) Update(ctx context.Context, user domain.User, id uuid.UUID, input Input) (domain.WorkoutTemplate, error) {
	if err := input.Validate(); err != nil {
		return domain.WorkoutTemplate{}, err
	}

	existing, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return domain.WorkoutTemplate{}, fmt.Errorf("get template: %w", err)
	}
	if existing.CreatedBy != user.ID {
		return domain.WorkoutTemplate{}, fmt.Errorf("template %s: %w", id, domain.ErrForbidden)
	}

	if err := s.checkExercises(ctx, user, input.ExerciseIDs); err != nil {
		return domain.WorkoutTemplate{}, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.ExerciseIDs = input.ExerciseIDs
	existing.UpdatedAt = time.Now()

	var updated domain.WorkoutTemplate
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.templates.Update(ctx, existing)
		return err
	})
	if err != nil {
		return domain.WorkoutTemplate{}, fmt.Errorf("update template: %w", err)
	}
	return updated, nil
}

// Get returns one template. The creator and admins may read it.
func (s *Service) Get(ctx context.Context, user domain.User, id uuid.UUID) (domain.WorkoutTemplate, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return domain.WorkoutTemplate{}, fmt.Errorf("get template: %w", err)
	}
	if t.CreatedBy != user.ID && !user.IsAdmin() {
		return domain.WorkoutTemplate{}, fmt.Errorf("template %s: %w", id, domain.ErrForbidden)
	}
	return t, nil
}

// List returns the user's templates. Admins see everyone's.
func (s *Service) List(ctx context.Context, user domain.User) ([]domain.WorkoutTemplate, error) {
	if user.IsAdmin() {
		templates, err := s.templates.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list templates: %w", err)
		}
		return templates, nil
	}

	templates, err := s.templates.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// Delete removes a template. Only its creator may delete it.
func (s *Service) Delete(ctx context.Context, user domain.User, id uuid.UUID) error {
	existing, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}
	if existing.CreatedBy != user.ID {
		return fmt.Errorf("template %s: %w", id, domain.ErrForbidden)
	}

	if err := s.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
