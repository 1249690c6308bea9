// Package exercise implements the Exercise repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the catalog search is built with squirrel
// because its predicate set depends on the filter.
package exercise

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Repo provides exercise persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new exercise repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// owner_is_admin is computed from the owner row so that the domain layer can
// decide usability without a second lookup. An unowned exercise counts as
// admin-published.
const exerciseColumns = `
    e.id, e.user_id, e.name, e.category, e.description, e.instructions,
    e.created_at, e.updated_at,
    (e.user_id IS NULL OR u.role = 'admin') AS owner_is_admin`

const fromExercises = `
FROM exercises e
LEFT JOIN users u ON u.id = e.user_id`

const getByIDSQL = `
SELECT` + exerciseColumns + fromExercises + `
WHERE e.id = $1`

const getByIDsSQL = `
SELECT` + exerciseColumns + fromExercises + `
WHERE e.id = ANY($1::uuid[])
ORDER BY e.name`

const listForUserSQL = `
SELECT` + exerciseColumns + fromExercises + `
WHERE e.user_id IS NULL OR e.user_id = $1 OR u.role = 'admin'
ORDER BY e.name`

const listAllSQL = `
SELECT` + exerciseColumns + fromExercises + `
ORDER BY e.name`

const insertSQL = `
INSERT INTO exercises (id, user_id, name, category, description, instructions, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

const updateSQL = `
UPDATE exercises
SET name = $2, category = $3, description = $4, instructions = $5, updated_at = $6
WHERE id = $1`

const deleteSQL = `DELETE FROM exercises WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an exercise by primary key.
// Returns domain.ErrNotFound if the exercise does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ex, err := scanExercise(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Exercise{}, postgres.MapError(err, "exercise", id)
	}

	return ex, nil
}

// GetByIDs returns the exercises matching the given IDs, ordered by name.
// Missing IDs are silently absent from the result; the caller compares sizes.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Exercise, error) {
	if len(ids) == 0 {
		return []domain.Exercise{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get exercises by ids: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ListForUser returns the exercises usable by a user: their own plus the
// predefined catalog (unowned or admin-owned), ordered by name.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises for user: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ListAll returns every exercise, ordered by name.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list all exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// Search returns the exercises usable by a user that match the filter,
// ordered by name. An empty filter behaves like ListForUser.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("e.id", "e.user_id", "e.name", "e.category", "e.description", "e.instructions",
			"e.created_at", "e.updated_at",
			"(e.user_id IS NULL OR u.role = 'admin') AS owner_is_admin").
		From("exercises e").
		LeftJoin("users u ON u.id = e.user_id").
		Where(squirrel.Or{
			squirrel.Eq{"e.user_id": nil},
			squirrel.Eq{"e.user_id": userID},
			squirrel.Eq{"u.role": "admin"},
		}).
		OrderBy("e.name")

	if filter.Name != "" {
		qb = qb.Where(squirrel.ILike{"e.name": "%" + filter.Name + "%"})
	}
	if filter.Category != nil {
		qb = qb.Where(squirrel.Eq{"e.category": string(*filter.Category)})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise search query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new exercise and returns it with generated fields set.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, ex domain.Exercise) (domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	now := time.Now()
	ex.CreatedAt = now
	ex.UpdatedAt = now

	_, err := q.Exec(ctx, insertSQL,
		ex.ID, ex.OwnerID, ex.Name, ex.Category, ex.Description, ex.Instructions, now,
	)
	if err != nil {
		return domain.Exercise{}, postgres.MapError(err, "exercise", ex.ID)
	}

	return ex, nil
}

// Update overwrites the mutable fields of an exercise.
// Returns domain.ErrNotFound if the exercise does not exist.
func (r *Repo) Update(ctx context.Context, ex domain.Exercise) (domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ex.UpdatedAt = time.Now()

	tag, err := q.Exec(ctx, updateSQL,
		ex.ID, ex.Name, ex.Category, ex.Description, ex.Instructions, ex.UpdatedAt,
	)
	if err != nil {
		return domain.Exercise{}, postgres.MapError(err, "exercise", ex.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.Exercise{}, fmt.Errorf("exercise %s: %w", ex.ID, domain.ErrNotFound)
	}

	return ex, nil
}

// Delete removes an exercise.
// Returns domain.ErrNotFound if the exercise does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "exercise", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
