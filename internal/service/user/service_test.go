package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type repoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (domain.User, error)
	CreateFunc     func(ctx context.Context, u domain.User) (domain.User, error)
	SetActiveFunc  func(ctx context.Context, id uuid.UUID, active bool) error
	ListFunc       func(ctx context.Context) ([]domain.User, error)
}

func (m *repoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *repoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *repoMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.CreateFunc(ctx, u)
}
func (m *repoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.SetActiveFunc(ctx, id, active)
}
func (m *repoMock) List(ctx context.Context) ([]domain.User, error) {
	return m.ListFunc(ctx)
}

func newTestService(repo *repoMock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	var stored domain.User
	svc := newTestService(&repoMock{
		CreateFunc: func(_ context.Context, u domain.User) (domain.User, error) {
			stored = u
			return u, nil
		},
	})

	created, err := svc.Create(context.Background(), "Lena", " Lena@Example.COM ")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if stored.Email != "lena@example.com" {
		t.Errorf("email = %q, want normalized lower-case", stored.Email)
	}
	if !created.Active || created.Role != domain.UserRoleUser {
		t.Errorf("created = %+v, want active regular user", created)
	}

	if _, err := svc.Create(context.Background(), "", "not-an-email"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("invalid input Create() = %v, want ErrValidation", err)
	}
}

func TestService_SetActive(t *testing.T) {
	t.Parallel()

	admin := domain.User{ID: uuid.New(), Role: domain.UserRoleAdmin}
	regular := domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	target := uuid.New()

	var gotActive bool
	svc := newTestService(&repoMock{
		SetActiveFunc: func(_ context.Context, _ uuid.UUID, active bool) error {
			gotActive = active
			return nil
		},
	})

	if err := svc.SetActive(context.Background(), admin, target, false); err != nil {
		t.Fatalf("admin SetActive() error: %v", err)
	}
	if gotActive {
		t.Error("deactivation must pass active=false to the repo")
	}

	if err := svc.SetActive(context.Background(), regular, target, false); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin SetActive() = %v, want ErrForbidden", err)
	}

	if err := svc.SetActive(context.Background(), admin, admin.ID, false); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("self-deactivation = %v, want ErrValidation", err)
	}

	// Self-activation is a no-op worth allowing.
	if err := svc.SetActive(context.Background(), admin, admin.ID, true); err != nil {
		t.Errorf("self-activation error: %v", err)
	}
}

func TestService_List_AdminOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService(&repoMock{
		ListFunc: func(context.Context) ([]domain.User, error) {
			return []domain.User{{}, {}}, nil
		},
	})

	admin := domain.User{ID: uuid.New(), Role: domain.UserRoleAdmin}
	users, err := svc.List(context.Background(), admin)
	if err != nil || len(users) != 2 {
		t.Errorf("List(admin) = %d, err %v; want 2, nil", len(users), err)
	}

	regular := domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	if _, err := svc.List(context.Background(), regular); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("List(user) = %v, want ErrForbidden", err)
	}
}
