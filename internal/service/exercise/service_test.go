package exercise

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

type repoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Exercise, error)
	ListForUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error)
	ListAllFunc     func(ctx context.Context) ([]domain.Exercise, error)
	CreateFunc      func(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	UpdateFunc      func(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	SearchFunc      func(ctx context.Context, userID uuid.UUID, filter domain.ExerciseFilter) ([]domain.Exercise, error)
}

func (m *repoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Exercise, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *repoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error) {
	return m.ListForUserFunc(ctx, userID)
}
func (m *repoMock) ListAll(ctx context.Context) ([]domain.Exercise, error) {
	return m.ListAllFunc(ctx)
}
func (m *repoMock) Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	return m.CreateFunc(ctx, exercise)
}
func (m *repoMock) Update(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	return m.UpdateFunc(ctx, exercise)
}
func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
func (m *repoMock) Search(ctx context.Context, userID uuid.UUID, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	return m.SearchFunc(ctx, userID, filter)
}

func newTestService(repo *repoMock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
}

var (
	testUser  = domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	adminUser = domain.User{ID: uuid.New(), Role: domain.UserRoleAdmin}
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	var stored domain.Exercise
	svc := newTestService(&repoMock{
		CreateFunc: func(_ context.Context, exercise domain.Exercise) (domain.Exercise, error) {
			stored = exercise
			return exercise, nil
		},
	})

	created, err := svc.Create(context.Background(), testUser, CreateInput{
		Name:     "Bench Press",
		Category: domain.CategoryStrength,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if stored.OwnerID == nil || *stored.OwnerID != testUser.ID {
		t.Error("created exercise must be owned by the caller")
	}
	if created.ID == uuid.Nil {
		t.Error("created exercise must get an id")
	}
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&repoMock{})

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"empty name", CreateInput{Name: " ", Category: domain.CategoryCardio}},
		{"unknown category", CreateInput{Name: "Thing", Category: "Mystery"}},
		{"lowercase category", CreateInput{Name: "Thing", Category: "cardio"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.Create(context.Background(), testUser, tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestService_Update_Authorization(t *testing.T) {
	t.Parallel()

	owner := domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	exercise := domain.Exercise{ID: uuid.New(), Name: "Squat", Category: domain.CategoryLegs, OwnerID: &owner.ID}

	repo := &repoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.Exercise, error) {
			return exercise, nil
		},
		UpdateFunc: func(_ context.Context, e domain.Exercise) (domain.Exercise, error) {
			return e, nil
		},
	}
	svc := newTestService(repo)

	if _, err := svc.Update(context.Background(), owner, exercise.ID, UpdateInput{Name: ptr("Back Squat")}); err != nil {
		t.Errorf("owner Update() error: %v", err)
	}
	if _, err := svc.Update(context.Background(), adminUser, exercise.ID, UpdateInput{Name: ptr("Back Squat")}); err != nil {
		t.Errorf("admin Update() error: %v", err)
	}
	if _, err := svc.Update(context.Background(), testUser, exercise.ID, UpdateInput{Name: ptr("x")}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger Update() = %v, want ErrForbidden", err)
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	t.Parallel()

	owner := domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	exercise := domain.Exercise{
		ID:       uuid.New(),
		Name:     "Squat",
		Category: domain.CategoryLegs,
		OwnerID:  &owner.ID,
	}

	var updated domain.Exercise
	svc := newTestService(&repoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.Exercise, error) {
			return exercise, nil
		},
		UpdateFunc: func(_ context.Context, e domain.Exercise) (domain.Exercise, error) {
			updated = e
			return e, nil
		},
	})

	_, err := svc.Update(context.Background(), owner, exercise.ID, UpdateInput{
		Description: ptr("compound lift"),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Name != "Squat" || updated.Category != domain.CategoryLegs {
		t.Error("untouched fields must be kept")
	}
	if updated.Description == nil || *updated.Description != "compound lift" {
		t.Error("description must be applied")
	}
}

func TestService_Get_Permission(t *testing.T) {
	t.Parallel()

	owner := domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	private := domain.Exercise{ID: uuid.New(), OwnerID: &owner.ID}

	svc := newTestService(&repoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.Exercise, error) {
			return private, nil
		},
	})

	if _, err := svc.Get(context.Background(), testUser, private.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Get() on foreign private exercise = %v, want ErrForbidden", err)
	}
}

func TestService_Instructions_Fallback(t *testing.T) {
	t.Parallel()

	svc := newTestService(&repoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.Exercise, error) {
			return domain.Exercise{ID: uuid.New(), OwnerID: &testUser.ID}, nil
		},
	})

	got, err := svc.Instructions(context.Background(), testUser, uuid.New())
	if err != nil {
		t.Fatalf("Instructions() error: %v", err)
	}
	if got != "Instruction not available, as it is not predefined" {
		t.Errorf("Instructions() = %q, want fallback text", got)
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	svc := newTestService(&repoMock{
		ListForUserFunc: func(context.Context, uuid.UUID) ([]domain.Exercise, error) {
			return []domain.Exercise{{}}, nil
		},
		ListAllFunc: func(context.Context) ([]domain.Exercise, error) {
			return []domain.Exercise{{}, {}, {}}, nil
		},
	})

	own, err := svc.List(context.Background(), testUser)
	if err != nil || len(own) != 1 {
		t.Errorf("List(user) = %d, err %v; want 1, nil", len(own), err)
	}
	all, err := svc.List(context.Background(), adminUser)
	if err != nil || len(all) != 3 {
		t.Errorf("List(admin) = %d, err %v; want 3, nil", len(all), err)
	}
}

func TestService_Search_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc := newTestService(&repoMock{})

	bad := domain.Category("Mystery")
	_, err := svc.Search(context.Background(), testUser, domain.ExerciseFilter{Category: &bad})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Search() = %v, want ErrValidation", err)
	}
}
