// Package workoutlog implements the WorkoutLog repository using PostgreSQL.
//
// A log spans three tables: the header row, its entries (one per logged
// exercise, with the precomputed best-set summary) and the raw sets under
// each entry. Reads load children in two batch queries keyed with ANY(...);
// writes replace the entry tree wholesale and rely on ON DELETE CASCADE for
// the sets. Callers wrap multi-statement writes in TxManager.RunInTx.
package workoutlog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Repo provides workout-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new workout-log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const logColumns = `
    wl.id, wl.user_id, wl.name, wl.workout_date, wl.duration_minutes,
    wl.total_load_kg, wl.record_count, wl.created_at, wl.updated_at`

const getByIDSQL = `
SELECT` + logColumns + `
FROM workout_logs wl
WHERE wl.id = $1`

const listByUserSQL = `
SELECT` + logColumns + `
FROM workout_logs wl
WHERE wl.user_id = $1
ORDER BY wl.workout_date DESC, wl.created_at DESC`

const listAllSQL = `
SELECT` + logColumns + `
FROM workout_logs wl
ORDER BY wl.workout_date DESC, wl.created_at DESC`

const listByUserAndExerciseSQL = `
SELECT` + logColumns + `
FROM workout_logs wl
WHERE wl.user_id = $1
  AND EXISTS (
      SELECT 1 FROM workout_log_entries le
      WHERE le.workout_log_id = wl.id AND le.exercise_id = $2
  )
ORDER BY wl.workout_date DESC, wl.created_at DESC`

const insertLogSQL = `
INSERT INTO workout_logs (id, user_id, name, workout_date, duration_minutes, total_load_kg, record_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

const updateHeaderSQL = `
UPDATE workout_logs
SET name = $2, workout_date = $3, duration_minutes = $4, total_load_kg = $5, record_count = $6, updated_at = $7
WHERE id = $1`

const deleteLogSQL = `DELETE FROM workout_logs WHERE id = $1`

const deleteEntriesSQL = `DELETE FROM workout_log_entries WHERE workout_log_id = $1`

const insertEntrySQL = `
INSERT INTO workout_log_entries (id, workout_log_id, exercise_id, best_set, position)
VALUES ($1, $2, $3, $4, $5)`

const insertSetSQL = `
INSERT INTO workout_log_sets (id, log_entry_id, set_number, value, reps, time_spent_seconds)
VALUES ($1, $2, $3, $4, $5, $6)`

const entriesByLogIDsSQL = `
SELECT le.id, le.workout_log_id, le.exercise_id, e.name, le.best_set, le.position
FROM workout_log_entries le
JOIN exercises e ON e.id = le.exercise_id
WHERE le.workout_log_id = ANY($1::uuid[])
ORDER BY le.workout_log_id, le.position`

const setsByEntryIDsSQL = `
SELECT s.log_entry_id, s.set_number, s.value, s.reps, s.time_spent_seconds
FROM workout_log_sets s
WHERE s.log_entry_id = ANY($1::uuid[])
ORDER BY s.log_entry_id, s.set_number`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a workout log with its entries and sets.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	log, err := scanLog(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.WorkoutLog{}, postgres.MapError(err, "workout_log", id)
	}

	logs := []domain.WorkoutLog{log}
	if err := r.attachEntries(ctx, q, logs); err != nil {
		return domain.WorkoutLog{}, fmt.Errorf("workout_log %s: %w", id, err)
	}

	return logs[0], nil
}

// ListByUser returns a user's workout logs with entries and sets, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutLog, error) {
	return r.list(ctx, listByUserSQL, userID)
}

// ListAll returns every workout log with entries and sets, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.WorkoutLog, error) {
	return r.list(ctx, listAllSQL)
}

// SearchByDate returns a user's workout logs within the date range
// (inclusive on both ends), newest first.
func (r *Repo) SearchByDate(ctx context.Context, userID uuid.UUID, dr domain.DateRange) ([]domain.WorkoutLog, error) {
	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("wl.id", "wl.user_id", "wl.name", "wl.workout_date", "wl.duration_minutes",
			"wl.total_load_kg", "wl.record_count", "wl.created_at", "wl.updated_at").
		From("workout_logs wl").
		Where(squirrel.Eq{"wl.user_id": userID}).
		Where(squirrel.GtOrEq{"wl.workout_date": dr.From}).
		Where(squirrel.LtOrEq{"wl.workout_date": dr.To}).
		OrderBy("wl.workout_date DESC", "wl.created_at DESC")

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build workout-log date query: %w", err)
	}

	return r.list(ctx, sql, args...)
}

// ListByUserAndExercise returns the user's logs that contain the exercise,
// newest first, with entries trimmed down to that exercise.
func (r *Repo) ListByUserAndExercise(ctx context.Context, userID, exerciseID uuid.UUID) ([]domain.WorkoutLog, error) {
	logs, err := r.list(ctx, listByUserAndExerciseSQL, userID, exerciseID)
	if err != nil {
		return nil, err
	}

	for i := range logs {
		kept := logs[i].Exercises[:0]
		for _, e := range logs[i].Exercises {
			if e.ExerciseID == exerciseID {
				kept = append(kept, e)
			}
		}
		logs[i].Exercises = kept
	}

	return logs, nil
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	logs, err := scanLogs(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := r.attachEntries(ctx, q, logs); err != nil {
		return nil, err
	}

	return logs, nil
}

// attachEntries loads entries and sets for the given logs in two batch
// queries and wires them onto the log structs in place.
func (r *Repo) attachEntries(ctx context.Context, q postgres.Querier, logs []domain.WorkoutLog) error {
	if len(logs) == 0 {
		return nil
	}

	logIDs := make([]uuid.UUID, len(logs))
	for i, l := range logs {
		logIDs[i] = l.ID
	}

	rows, err := q.Query(ctx, entriesByLogIDsSQL, logIDs)
	if err != nil {
		return fmt.Errorf("load workout-log entries: %w", err)
	}

	type entryRow struct {
		logID uuid.UUID
		entry domain.LoggedExercise
	}

	var entryRows []entryRow
	var entryIDs []uuid.UUID
	for rows.Next() {
		var er entryRow
		if err := rows.Scan(&er.entry.ID, &er.logID, &er.entry.ExerciseID,
			&er.entry.ExerciseName, &er.entry.BestSet, &er.entry.Position); err != nil {
			rows.Close()
			return fmt.Errorf("scan workout-log entry row: %w", err)
		}
		er.entry.Sets = []domain.PerformanceSet{}
		entryRows = append(entryRows, er)
		entryIDs = append(entryIDs, er.entry.ID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate workout-log entry rows: %w", err)
	}
	rows.Close()

	setsByEntry := map[uuid.UUID][]domain.PerformanceSet{}
	if len(entryIDs) > 0 {
		setRows, err := q.Query(ctx, setsByEntryIDsSQL, entryIDs)
		if err != nil {
			return fmt.Errorf("load workout-log sets: %w", err)
		}
		for setRows.Next() {
			var entryID uuid.UUID
			var set domain.PerformanceSet
			if err := setRows.Scan(&entryID, &set.SetNumber, &set.Value, &set.Reps, &set.TimeSpentSeconds); err != nil {
				setRows.Close()
				return fmt.Errorf("scan workout-log set row: %w", err)
			}
			setsByEntry[entryID] = append(setsByEntry[entryID], set)
		}
		if err := setRows.Err(); err != nil {
			setRows.Close()
			return fmt.Errorf("iterate workout-log set rows: %w", err)
		}
		setRows.Close()
	}

	byLog := map[uuid.UUID][]domain.LoggedExercise{}
	for _, er := range entryRows {
		if sets, ok := setsByEntry[er.entry.ID]; ok {
			er.entry.Sets = sets
		}
		byLog[er.logID] = append(byLog[er.logID], er.entry)
	}

	for i := range logs {
		if entries, ok := byLog[logs[i].ID]; ok {
			logs[i].Exercises = entries
		} else {
			logs[i].Exercises = []domain.LoggedExercise{}
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the workout-log header and returns it with generated fields
// set. Entries are written separately via ReplaceEntries.
func (r *Repo) Create(ctx context.Context, log domain.WorkoutLog) (domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	now := time.Now()
	log.CreatedAt = now
	log.UpdatedAt = now

	_, err := q.Exec(ctx, insertLogSQL,
		log.ID, log.UserID, log.Name, log.Date, log.DurationMinutes,
		log.TotalLoadKg, log.RecordCount, now,
	)
	if err != nil {
		return domain.WorkoutLog{}, postgres.MapError(err, "workout_log", log.ID)
	}

	return log, nil
}

// UpdateHeader overwrites the mutable header fields of a workout log.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) UpdateHeader(ctx context.Context, log domain.WorkoutLog) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateHeaderSQL,
		log.ID, log.Name, log.Date, log.DurationMinutes,
		log.TotalLoadKg, log.RecordCount, time.Now(),
	)
	if err != nil {
		return postgres.MapError(err, "workout_log", log.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_log %s: %w", log.ID, domain.ErrNotFound)
	}

	return nil
}

// ReplaceEntries deletes all entries of a log (sets cascade) and inserts the
// given ones. Meant to run inside a transaction together with the header
// write so a failed replace never leaves a half-written log.
func (r *Repo) ReplaceEntries(ctx context.Context, logID uuid.UUID, entries []domain.LoggedExercise) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteEntriesSQL, logID); err != nil {
		return postgres.MapError(err, "workout_log", logID)
	}

	for _, entry := range entries {
		entryID := entry.ID
		if entryID == uuid.Nil {
			entryID = uuid.New()
		}

		_, err := q.Exec(ctx, insertEntrySQL,
			entryID, logID, entry.ExerciseID, entry.BestSet, entry.Position,
		)
		if err != nil {
			return postgres.MapError(err, "workout_log_entry", entryID)
		}

		for _, set := range entry.Sets {
			_, err := q.Exec(ctx, insertSetSQL,
				uuid.New(), entryID, set.SetNumber, set.Value, set.Reps, set.TimeSpentSeconds,
			)
			if err != nil {
				return postgres.MapError(err, "workout_log_set", entryID)
			}
		}
	}

	return nil
}

// Delete removes a workout log; entries and sets cascade. Personal records
// claimed by the log are intentionally untouched.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteLogSQL, id)
	if err != nil {
		return postgres.MapError(err, "workout_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
