// Package user implements the minimal account operations the backend needs:
// lookups for authorization, registration of accounts, and admin-controlled
// activation.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type repo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	List(ctx context.Context) ([]domain.User, error)
}

// Service implements the user business logic.
type Service struct {
	users repo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users repo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail returns a user by email, normalized to lower case.
func (s *Service) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Create registers a new active user with the regular role.
func (s *Service) Create(ctx context.Context, name, email string) (domain.User, error) {
	var errs []domain.FieldError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(errs) > 0 {
		return domain.User{}, domain.NewValidationErrors(errs)
	}

	now := time.Now()
	created, err := s.users.Create(ctx, domain.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      domain.UserRoleUser,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", created.ID.String()))
	return created, nil
}

// SetActive activates or deactivates an account. Admin only; admins cannot
// deactivate themselves.
func (s *Service) SetActive(ctx context.Context, actor domain.User, id uuid.UUID, active bool) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("set active: %w", domain.ErrForbidden)
	}
	if actor.ID == id && !active {
		return domain.NewValidationError("user_id", "cannot deactivate your own account")
	}

	if err := s.users.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set active: %w", err)
	}

	s.log.InfoContext(ctx, "user activation changed",
		slog.String("user_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.Bool("active", active),
	)

	return nil
}

// List returns all users. Admin only.
func (s *Service) List(ctx context.Context, actor domain.User) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("list users: %w", domain.ErrForbidden)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
