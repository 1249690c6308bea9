// Package measurement implements the body-measurement repositories using
// PostgreSQL: Repo for measurement entries and TypeRepo for the measure-type
// catalog.
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

// Repo provides measurement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new measurement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const measurementColumns = `id, user_id, measure_type_id, value, measured_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + measurementColumns + `
FROM measurements
WHERE id = $1`

const historySQL = `
SELECT ` + measurementColumns + `
FROM measurements
WHERE user_id = $1 AND measure_type_id = $2
ORDER BY measured_at DESC, created_at DESC`

const insertSQL = `
INSERT INTO measurements (id, user_id, measure_type_id, value, measured_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`

const updateSQL = `
UPDATE measurements
SET value = $2, measured_at = $3, updated_at = $4
WHERE id = $1`

const deleteSQL = `DELETE FROM measurements WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a measurement by primary key.
// Returns domain.ErrNotFound if the measurement does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Measurement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	m, err := scanMeasurement(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Measurement{}, postgres.MapError(err, "measurement", id)
	}

	return m, nil
}

// History returns a user's measurements of one type, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) History(ctx context.Context, userID, typeID uuid.UUID) ([]domain.Measurement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, historySQL, userID, typeID)
	if err != nil {
		return nil, fmt.Errorf("measurement history: %w", err)
	}
	defer rows.Close()

	measurements := []domain.Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan measurement row: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measurement rows: %w", err)
	}

	return measurements, nil
}

// Create inserts a new measurement and returns it with generated fields set.
// Returns domain.ErrNotFound when the measure type or user is missing.
func (r *Repo) Create(ctx context.Context, m domain.Measurement) (domain.Measurement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := q.Exec(ctx, insertSQL,
		m.ID, m.UserID, m.MeasureTypeID, m.Value, m.MeasuredAt, now,
	)
	if err != nil {
		return domain.Measurement{}, postgres.MapError(err, "measurement", m.ID)
	}

	return m, nil
}

// Update overwrites the value and date of a measurement.
// Returns domain.ErrNotFound if the measurement does not exist.
func (r *Repo) Update(ctx context.Context, m domain.Measurement) (domain.Measurement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	m.UpdatedAt = time.Now()

	tag, err := q.Exec(ctx, updateSQL, m.ID, m.Value, m.MeasuredAt, m.UpdatedAt)
	if err != nil {
		return domain.Measurement{}, postgres.MapError(err, "measurement", m.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.Measurement{}, fmt.Errorf("measurement %s: %w", m.ID, domain.ErrNotFound)
	}

	return m, nil
}

// Delete removes a measurement.
// Returns domain.ErrNotFound if the measurement does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "measurement", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("measurement %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanMeasurement(row pgx.Row) (domain.Measurement, error) {
	var m domain.Measurement
	err := row.Scan(
		&m.ID, &m.UserID, &m.MeasureTypeID, &m.Value, &m.MeasuredAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.Measurement{}, err
	}
	return m, nil
}
