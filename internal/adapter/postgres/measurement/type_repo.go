package measurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// TypeRepo provides measure-type persistence backed by PostgreSQL.
type TypeRepo struct {
	db postgres.Querier
}

// NewTypeRepo creates a new measure-type repository.
func NewTypeRepo(db postgres.Querier) *TypeRepo {
	return &TypeRepo{db: db}
}

const typeColumns = `id, name, unit, created_at, updated_at`

const getTypeByIDSQL = `
SELECT ` + typeColumns + `
FROM measure_types
WHERE id = $1`

const listTypesSQL = `
SELECT ` + typeColumns + `
FROM measure_types
ORDER BY name`

const insertTypeSQL = `
INSERT INTO measure_types (id, name, unit, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)`

// Create inserts a new measure type and returns it with generated fields set.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *TypeRepo) Create(ctx context.Context, mt domain.MeasureType) (domain.MeasureType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if mt.ID == uuid.Nil {
		mt.ID = uuid.New()
	}
	now := time.Now()
	mt.CreatedAt = now
	mt.UpdatedAt = now

	_, err := q.Exec(ctx, insertTypeSQL, mt.ID, mt.Name, mt.Unit, now)
	if err != nil {
		return domain.MeasureType{}, postgres.MapError(err, "measure_type", mt.ID)
	}

	return mt, nil
}

// GetByID returns a measure type by primary key.
// Returns domain.ErrNotFound if the type does not exist.
func (r *TypeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.MeasureType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	mt, err := scanType(q.QueryRow(ctx, getTypeByIDSQL, id))
	if err != nil {
		return domain.MeasureType{}, postgres.MapError(err, "measure_type", id)
	}

	return mt, nil
}

// List returns all measure types ordered by name.
func (r *TypeRepo) List(ctx context.Context) ([]domain.MeasureType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listTypesSQL)
	if err != nil {
		return nil, fmt.Errorf("list measure types: %w", err)
	}
	defer rows.Close()

	types := []domain.MeasureType{}
	for rows.Next() {
		mt, err := scanType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan measure_type row: %w", err)
		}
		types = append(types, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measure_type rows: %w", err)
	}

	return types, nil
}

func scanType(row pgx.Row) (domain.MeasureType, error) {
	var mt domain.MeasureType
	if err := row.Scan(&mt.ID, &mt.Name, &mt.Unit, &mt.CreatedAt, &mt.UpdatedAt); err != nil {
		return domain.MeasureType{}, err
	}
	return mt, nil
}
