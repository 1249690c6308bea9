// Package record implements the personal-record store using PostgreSQL.
//
// The Upsert is a single atomic INSERT ... ON CONFLICT statement whose
// WHERE clause re-checks the "strictly better" predicate inside the
// database. Concurrent evaluations of the same (user, exercise, kind)
// therefore cannot lose an improvement to a read-compare-write race.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Repo provides personal-record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new personal-record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const recordColumns = `id, user_id, exercise_id, record_kind, max_value, max_reps, max_time_spent_seconds, created_at, updated_at`

const findSQL = `
SELECT ` + recordColumns + `
FROM personal_records
WHERE user_id = $1 AND exercise_id = $2 AND record_kind = $3`

const listByUserAndExerciseSQL = `
SELECT ` + recordColumns + `
FROM personal_records
WHERE user_id = $1 AND exercise_id = $2
ORDER BY record_kind`

const listByUserSQL = `
SELECT ` + recordColumns + `
FROM personal_records
WHERE user_id = $1
ORDER BY exercise_id, record_kind`

// The conflict predicate mirrors domain.PersonalRecord.Metric for each kind:
// volume for strength, distance*time for cardio, reps for bodyweight, held
// time for everything else. Strict inequality keeps the older row on ties.
const upsertSQL = `
INSERT INTO personal_records (id, user_id, exercise_id, record_kind, max_value, max_reps, max_time_spent_seconds, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (user_id, exercise_id, record_kind) DO UPDATE SET
    max_value              = EXCLUDED.max_value,
    max_reps               = EXCLUDED.max_reps,
    max_time_spent_seconds = EXCLUDED.max_time_spent_seconds,
    updated_at             = EXCLUDED.updated_at
WHERE CASE personal_records.record_kind
      WHEN 'Strength'   THEN EXCLUDED.max_value * EXCLUDED.max_reps > personal_records.max_value * personal_records.max_reps
      WHEN 'Cardio'     THEN EXCLUDED.max_value * EXCLUDED.max_time_spent_seconds > personal_records.max_value * personal_records.max_time_spent_seconds
      WHEN 'Bodyweight' THEN EXCLUDED.max_reps > personal_records.max_reps
      ELSE                   EXCLUDED.max_time_spent_seconds > personal_records.max_time_spent_seconds
      END`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Upsert inserts the candidate record or overwrites the stored one when the
// candidate is strictly better for its kind. It reports whether a row was
// written, i.e. whether the candidate is a new personal record.
func (r *Repo) Upsert(ctx context.Context, rec domain.PersonalRecord) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	tag, err := q.Exec(ctx, upsertSQL,
		id, rec.UserID, rec.ExerciseID, rec.Kind,
		rec.MaxValue, rec.MaxReps, rec.MaxTimeSpentSeconds, time.Now(),
	)
	if err != nil {
		return false, postgres.MapError(err, "personal_record", id)
	}

	return tag.RowsAffected() == 1, nil
}

// Find returns the stored record for one (user, exercise, kind) triple.
// Returns domain.ErrNotFound when no record has been claimed yet.
func (r *Repo) Find(ctx context.Context, userID, exerciseID uuid.UUID, kind domain.RecordKind) (domain.PersonalRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, findSQL, userID, exerciseID, kind)
	rec, err := scanRecord(row)
	if err != nil {
		return domain.PersonalRecord{}, postgres.MapError(err, "personal_record", exerciseID)
	}

	return rec, nil
}

// ListByUserAndExercise returns all record kinds a user holds for an exercise.
// Returns an empty slice (not nil) when the user holds none.
func (r *Repo) ListByUserAndExercise(ctx context.Context, userID, exerciseID uuid.UUID) ([]domain.PersonalRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByUserAndExerciseSQL, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("list records by user and exercise: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByUser returns every personal record a user holds.
// Returns an empty slice (not nil) when the user holds none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PersonalRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list records by user: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}
