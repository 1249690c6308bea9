package measurement

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

type typeRepoMock struct {
	CreateFunc  func(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.MeasureType, error)
	ListFunc    func(ctx context.Context) ([]domain.MeasureType, error)
}

func (m *typeRepoMock) Create(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error) {
	return m.CreateFunc(ctx, mt)
}
func (m *typeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.MeasureType, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *typeRepoMock) List(ctx context.Context) ([]domain.MeasureType, error) {
	return m.ListFunc(ctx)
}

type measurementRepoMock struct {
	CreateFunc  func(ctx context.Context, m domain.Measurement) (domain.Measurement, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Measurement, error)
	UpdateFunc  func(ctx context.Context, m domain.Measurement) (domain.Measurement, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	HistoryFunc func(ctx context.Context, userID, typeID uuid.UUID) ([]domain.Measurement, error)
}

func (m *measurementRepoMock) Create(ctx context.Context, mm domain.Measurement) (domain.Measurement, error) {
	return m.CreateFunc(ctx, mm)
}
func (m *measurementRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Measurement, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *measurementRepoMock) Update(ctx context.Context, mm domain.Measurement) (domain.Measurement, error) {
	return m.UpdateFunc(ctx, mm)
}
func (m *measurementRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
func (m *measurementRepoMock) History(ctx context.Context, userID, typeID uuid.UUID) ([]domain.Measurement, error) {
	return m.HistoryFunc(ctx, userID, typeID)
}

var (
	testUser  = domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	adminUser = domain.User{ID: uuid.New(), Role: domain.UserRoleAdmin}
)

func newTestService(types *typeRepoMock, measurements *measurementRepoMock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), types, measurements)
}

func TestService_CreateType(t *testing.T) {
	t.Parallel()

	types := &typeRepoMock{
		CreateFunc: func(_ context.Context, mt domain.MeasureType) (domain.MeasureType, error) {
			return mt, nil
		},
	}
	svc := newTestService(types, &measurementRepoMock{})

	if _, err := svc.CreateType(context.Background(), testUser, "weight", "kg"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin CreateType() = %v, want ErrForbidden", err)
	}

	created, err := svc.CreateType(context.Background(), adminUser, "weight", "kg")
	if err != nil {
		t.Fatalf("admin CreateType() error: %v", err)
	}
	if created.Name != "weight" || created.Unit != "kg" {
		t.Errorf("created = %+v", created)
	}

	if _, err := svc.CreateType(context.Background(), adminUser, " ", "kg"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name = %v, want ErrValidation", err)
	}
}

func TestService_Record(t *testing.T) {
	t.Parallel()

	typeID := uuid.New()
	types := &typeRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (domain.MeasureType, error) {
			if id != typeID {
				return domain.MeasureType{}, domain.ErrNotFound
			}
			return domain.MeasureType{ID: typeID, Name: "weight", Unit: "kg"}, nil
		},
	}
	measurements := &measurementRepoMock{
		CreateFunc: func(_ context.Context, m domain.Measurement) (domain.Measurement, error) {
			return m, nil
		},
	}
	svc := newTestService(types, measurements)

	created, err := svc.Record(context.Background(), testUser, RecordInput{
		MeasureTypeID: typeID,
		Value:         82.5,
		MeasuredAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if created.UserID != testUser.ID || created.Value != 82.5 {
		t.Errorf("created = %+v", created)
	}

	_, err = svc.Record(context.Background(), testUser, RecordInput{
		MeasureTypeID: uuid.New(),
		Value:         82.5,
		MeasuredAt:    time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown type Record() = %v, want ErrNotFound", err)
	}

	_, err = svc.Record(context.Background(), testUser, RecordInput{MeasureTypeID: typeID, Value: -1, MeasuredAt: time.Now()})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("negative value Record() = %v, want ErrValidation", err)
	}
}

func TestService_Update_OwnerOnly(t *testing.T) {
	t.Parallel()

	measurementID := uuid.New()
	measurements := &measurementRepoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.Measurement, error) {
			return domain.Measurement{ID: measurementID, UserID: testUser.ID, Value: 80}, nil
		},
		UpdateFunc: func(_ context.Context, m domain.Measurement) (domain.Measurement, error) {
			return m, nil
		},
	}
	svc := newTestService(&typeRepoMock{}, measurements)

	updated, err := svc.Update(context.Background(), testUser, measurementID, UpdateInput{Value: ptr(81.0)})
	if err != nil {
		t.Fatalf("owner Update() error: %v", err)
	}
	if updated.Value != 81 {
		t.Errorf("Value = %v, want 81", updated.Value)
	}

	stranger := domain.User{ID: uuid.New(), Role: domain.UserRoleUser}
	if _, err := svc.Update(context.Background(), stranger, measurementID, UpdateInput{Value: ptr(81.0)}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger Update() = %v, want ErrForbidden", err)
	}
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	t.Parallel()

	deleted := false
	measurements := &measurementRepoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (domain.Measurement, error) {
			return domain.Measurement{UserID: testUser.ID}, nil
		},
		DeleteFunc: func(context.Context, uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := newTestService(&typeRepoMock{}, measurements)

	if err := svc.Delete(context.Background(), testUser, uuid.New()); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if !deleted {
		t.Error("repo Delete must be called")
	}

	if err := svc.Delete(context.Background(), adminUser, uuid.New()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-owner Delete() = %v, want ErrForbidden", err)
	}
}
