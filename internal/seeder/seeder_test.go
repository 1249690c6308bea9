package seeder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type userRepoMock struct {
	getByEmailFunc func(ctx context.Context, email string) (domain.User, error)
	createFunc     func(ctx context.Context, u domain.User) (domain.User, error)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.createFunc(ctx, u)
}

type exerciseRepoMock struct {
	createFunc func(ctx context.Context, ex domain.Exercise) (domain.Exercise, error)
}

func (m *exerciseRepoMock) Create(ctx context.Context, ex domain.Exercise) (domain.Exercise, error) {
	return m.createFunc(ctx, ex)
}

type typeRepoMock struct {
	createFunc func(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error)
}

func (m *typeRepoMock) Create(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error) {
	return m.createFunc(ctx, mt)
}

func TestSeeder_Run_FreshDatabase(t *testing.T) {
	t.Parallel()

	var createdAdmin *domain.User
	users := &userRepoMock{
		getByEmailFunc: func(_ context.Context, email string) (domain.User, error) {
			return domain.User{}, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		},
		createFunc: func(_ context.Context, u domain.User) (domain.User, error) {
			createdAdmin = &u
			return u, nil
		},
	}

	var exercises []domain.Exercise
	exRepo := &exerciseRepoMock{
		createFunc: func(_ context.Context, ex domain.Exercise) (domain.Exercise, error) {
			exercises = append(exercises, ex)
			return ex, nil
		},
	}

	var types []domain.MeasureType
	mtRepo := &typeRepoMock{
		createFunc: func(_ context.Context, mt domain.MeasureType) (domain.MeasureType, error) {
			types = append(types, mt)
			return mt, nil
		},
	}

	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)), users, exRepo, mtRepo)
	if err := s.Run(context.Background(), "Administrator", "admin@fitlog.local"); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if createdAdmin == nil {
		t.Fatal("expected admin account to be created")
	}
	if createdAdmin.Role != domain.UserRoleAdmin {
		t.Errorf("admin role = %q, want %q", createdAdmin.Role, domain.UserRoleAdmin)
	}
	if !createdAdmin.Active {
		t.Error("admin should be active")
	}

	if len(exercises) != len(catalog) {
		t.Fatalf("created %d exercises, want %d", len(exercises), len(catalog))
	}
	for _, ex := range exercises {
		if ex.OwnerID == nil || *ex.OwnerID != createdAdmin.ID {
			t.Errorf("exercise %q not owned by admin", ex.Name)
		}
		if !ex.OwnerIsAdmin {
			t.Errorf("exercise %q not marked admin-owned", ex.Name)
		}
	}

	if len(types) != len(measureTypes) {
		t.Errorf("created %d measure types, want %d", len(types), len(measureTypes))
	}
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	t.Parallel()

	admin := domain.User{ID: uuid.New(), Role: domain.UserRoleAdmin, Active: true}
	users := &userRepoMock{
		getByEmailFunc: func(_ context.Context, _ string) (domain.User, error) {
			return admin, nil
		},
		createFunc: func(_ context.Context, _ domain.User) (domain.User, error) {
			t.Fatal("admin must not be re-created")
			return domain.User{}, nil
		},
	}

	exRepo := &exerciseRepoMock{
		createFunc: func(_ context.Context, ex domain.Exercise) (domain.Exercise, error) {
			return domain.Exercise{}, fmt.Errorf("exercise %q: %w", ex.Name, domain.ErrAlreadyExists)
		},
	}
	mtRepo := &typeRepoMock{
		createFunc: func(_ context.Context, mt domain.MeasureType) (domain.MeasureType, error) {
			return domain.MeasureType{}, fmt.Errorf("measure type %q: %w", mt.Name, domain.ErrAlreadyExists)
		},
	}

	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)), users, exRepo, mtRepo)
	if err := s.Run(context.Background(), "Administrator", "admin@fitlog.local"); err != nil {
		t.Fatalf("Run() should skip existing rows, got error: %v", err)
	}
}
