// Package seeder bootstraps a fresh database: the admin account, the
// predefined exercise catalog and the standard measure types. Running it
// again is safe; rows that already exist are skipped.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type exerciseRepo interface {
	Create(ctx context.Context, ex domain.Exercise) (domain.Exercise, error)
}

type typeRepo interface {
	Create(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error)
}

// Seeder inserts the bootstrap data set.
type Seeder struct {
	users     userRepo
	exercises exerciseRepo
	types     typeRepo
	log       *slog.Logger
}

// New creates a seeder.
func New(log *slog.Logger, users userRepo, exercises exerciseRepo, types typeRepo) *Seeder {
	return &Seeder{
		users:     users,
		exercises: exercises,
		types:     types,
		log:       log.With("component", "seeder"),
	}
}

// Run ensures the admin account exists, then inserts the predefined
// exercises (owned by the admin) and the measure-type catalog.
func (s *Seeder) Run(ctx context.Context, adminName, adminEmail string) error {
	admin, err := s.ensureAdmin(ctx, adminName, adminEmail)
	if err != nil {
		return err
	}

	created, skipped := 0, 0
	for _, ex := range catalog {
		ex.OwnerID = &admin.ID
		ex.OwnerIsAdmin = true
		if _, err := s.exercises.Create(ctx, ex); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			return fmt.Errorf("seed exercise %q: %w", ex.Name, err)
		}
		created++
	}
	s.log.InfoContext(ctx, "exercise catalog seeded",
		slog.Int("created", created), slog.Int("skipped", skipped))

	created, skipped = 0, 0
	for _, mt := range measureTypes {
		if _, err := s.types.Create(ctx, mt); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			return fmt.Errorf("seed measure type %q: %w", mt.Name, err)
		}
		created++
	}
	s.log.InfoContext(ctx, "measure types seeded",
		slog.Int("created", created), slog.Int("skipped", skipped))

	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, name, email string) (domain.User, error) {
	admin, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("look up admin: %w", err)
	}

	admin, err = s.users.Create(ctx, domain.User{
		ID:     uuid.New(),
		Name:   name,
		Email:  email,
		Role:   domain.UserRoleAdmin,
		Active: true,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create admin: %w", err)
	}

	s.log.InfoContext(ctx, "admin account created", slog.String("email", email))
	return admin, nil
}
