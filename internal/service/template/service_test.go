package template

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

type templateRepoMock struct {
	CreateFunc     func(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error)
	UpdateFunc     func(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.WorkoutTemplate, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutTemplate, error)
	ListAllFunc    func(ctx context.Context) ([]domain.WorkoutTemplate, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *templateRepoMock) Create(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error) {
	return m.CreateFunc(ctx, t)
}
func (m *templateRepoMock) Update(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error) {
	return m.UpdateFunc(ctx, t)
}
func (m *templateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutTemplate, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *templateRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutTemplate, error) {
	return m.ListByUserFunc(ctx, userID)
}
func (m *templateRepoMock) ListAll(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	return m.ListAllFunc(ctx)
}
func (m *templateRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type exerciseRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Exercise, error)
}

func (m *exerciseRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Exercise, error) {
	return m.GetByIDsFunc(ctx, ids)
}

var (
	testUser  = domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	otherUser = domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
)

func exerciseLookup(exercises ...domain.Exercise) *exerciseRepoMock {
	return &exerciseRepoMock{
		GetByIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]domain.Exercise, error) {
			var found []domain.Exercise
			for _, e := range exercises {
				for _, id := range ids {
					if e.ID == id {
						found = append(found, e)
					}
				}
			}
			return found, nil
		},
	}
}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(templates *templateRepoMock, exercises *exerciseRepoMock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), templates, exercises, &txManagerMock{})
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	own := domain.Exercise{ID: uuid.New(), Name: "Squat", OwnerID: &testUser.ID}
	predefined := domain.Exercise{ID: uuid.New(), Name: "Plank"}

	templates := &templateRepoMock{
		CreateFunc: func(_ context.Context, tpl domain.WorkoutTemplate) (domain.WorkoutTemplate, error) {
			return tpl, nil
		},
	}
	svc := newTestService(templates, exerciseLookup(own, predefined))

	created, err := svc.Create(context.Background(), testUser, Input{
		Name:        "leg day",
		ExerciseIDs: []uuid.UUID{own.ID, predefined.ID},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.CreatedBy != testUser.ID || len(created.ExerciseIDs) != 2 {
		t.Errorf("created = %+v", created)
	}
}

func TestService_Create_RejectsUnusableExercise(t *testing.T) {
	t.Parallel()

	foreign := domain.Exercise{ID: uuid.New(), Name: "Secret Move", OwnerID: &otherUser.ID}
	svc := newTestService(&templateRepoMock{}, exerciseLookup(foreign))

	_, err := svc.Create(context.Background(), testUser, Input{
		Name:        "stolen plan",
		ExerciseIDs: []uuid.UUID{foreign.ID},
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Create() = %v, want ErrForbidden", err)
	}
}

func TestService_Create_RejectsMissingExercise(t *testing.T) {
	t.Parallel()

	svc := newTestService(&templateRepoMock{}, exerciseLookup())

	_, err := svc.Create(context.Background(), testUser, Input{
		Name:        "ghost plan",
		ExerciseIDs: []uuid.UUID{uuid.New()},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() = %v, want ErrNotFound", err)
	}
}

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name    string
		input   Input
		wantErr bool
	}{
		{"valid", Input{Name: "plan", ExerciseIDs: []uuid.UUID{id}}, false},
		{"empty name", Input{Name: " ", ExerciseIDs: []uuid.UUID{id}}, true},
		{"no exercises", Input{Name: "plan"}, true},
		{"nil exercise id", Input{Name: "plan", ExerciseIDs: []uuid.UUID{uuid.Nil}}, true},
		{"duplicate exercise", Input{Name: "plan", ExerciseIDs: []uuid.UUID{id, id}}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if tt.wantErr && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestService_Update_CreatorOnly(t *testing.T) {
	t.Parallel()

	tplID := uuid.New()
	exercise := domain.Exercise{ID: uuid.New(), Name: "Plank"}
	templates := &templateRepoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.WorkoutTemplate, error) {
			return domain.WorkoutTemplate{ID: tplID, CreatedBy: testUser.ID}, nil
		},
		UpdateFunc: func(_ context.Context, tpl domain.WorkoutTemplate) (domain.WorkoutTemplate, error) {
			return tpl, nil
		},
	}
	svc := newTestService(templates, exerciseLookup(exercise))

	input := Input{Name: "core day", ExerciseIDs: []uuid.UUID{exercise.ID}}

	if _, err := svc.Update(context.Background(), testUser, tplID, input); err != nil {
		t.Errorf("creator Update() error: %v", err)
	}
	if _, err := svc.Update(context.Background(), otherUser, tplID, input); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger Update() = %v, want ErrForbidden", err)
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	templates := &templateRepoMock{
		ListByUserFunc: func(context.Context, uuid.UUID) ([]domain.WorkoutTemplate, error) {
			return []domain.WorkoutTemplate{{}}, nil
		},
		ListAllFunc: func(context.Context) ([]domain.WorkoutTemplate, error) {
			return []domain.WorkoutTemplate{{}, {}}, nil
		},
	}
	svc := newTestService(templates, exerciseLookup())

	own, err := svc.List(context.Background(), testUser)
	if err != nil || len(own) != 1 {
		t.Errorf("List(user) = %d, err %v; want 1, nil", len(own), err)
	}

	admin := domain.User{ID: uuid.New(), Role: domain.UserRoleAdmin}
	all, err := svc.List(context.Background(), admin)
	if err != nil || len(all) != 2 {
		t.Errorf("List(admin) = %d, err %v; want 2, nil", len(all), err)
	}
}
