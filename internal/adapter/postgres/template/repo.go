// Package template implements the WorkoutTemplate repository using
// PostgreSQL. Exercise membership lives in the workout_template_exercises
// join table, ordered by position. Create and Update touch both tables, so
// callers wrap them in TxManager.RunInTx.
package template

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Repo provides workout-template persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new workout-template repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const templateColumns = `id, name, description, created_by, created_at, updated_at`

const getByIDSQL = `
SELECT ` + templateColumns + `
FROM workout_templates
WHERE id = $1`

const listByUserSQL = `
SELECT ` + templateColumns + `
FROM workout_templates
WHERE created_by = $1
ORDER BY name`

const listAllSQL = `
SELECT ` + templateColumns + `
FROM workout_templates
ORDER BY name`

const insertSQL = `
INSERT INTO workout_templates (id, name, description, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`

const updateSQL = `
UPDATE workout_templates
SET name = $2, description = $3, updated_at = $4
WHERE id = $1`

const deleteSQL = `DELETE FROM workout_templates WHERE id = $1`

const insertLinkSQL = `
INSERT INTO workout_template_exercises (workout_template_id, exercise_id, position)
VALUES ($1, $2, $3)`

const deleteLinksSQL = `DELETE FROM workout_template_exercises WHERE workout_template_id = $1`

const linksByTemplateIDsSQL = `
SELECT workout_template_id, exercise_id
FROM workout_template_exercises
WHERE workout_template_id = ANY($1::uuid[])
ORDER BY workout_template_id, position`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a template with its exercise IDs in template order.
// Returns domain.ErrNotFound if the template does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanTemplate(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.WorkoutTemplate{}, postgres.MapError(err, "workout_template", id)
	}

	templates := []domain.WorkoutTemplate{t}
	if err := r.attachExerciseIDs(ctx, q, templates); err != nil {
		return domain.WorkoutTemplate{}, fmt.Errorf("workout_template %s: %w", id, err)
	}

	return templates[0], nil
}

// ListByUser returns the templates a user created, ordered by name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutTemplate, error) {
	return r.list(ctx, listByUserSQL, userID)
}

// ListAll returns every template, ordered by name.
func (r *Repo) ListAll(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	return r.list(ctx, listAllSQL)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.WorkoutTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout templates: %w", err)
	}

	templates := []domain.WorkoutTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan workout_template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate workout_template rows: %w", err)
	}
	rows.Close()

	if err := r.attachExerciseIDs(ctx, q, templates); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repo) attachExerciseIDs(ctx context.Context, q postgres.Querier, templates []domain.WorkoutTemplate) error {
	if len(templates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}

	rows, err := q.Query(ctx, linksByTemplateIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("load template exercises: %w", err)
	}
	defer rows.Close()

	byTemplate := map[uuid.UUID][]uuid.UUID{}
	for rows.Next() {
		var templateID, exerciseID uuid.UUID
		if err := rows.Scan(&templateID, &exerciseID); err != nil {
			return fmt.Errorf("scan template exercise row: %w", err)
		}
		byTemplate[templateID] = append(byTemplate[templateID], exerciseID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate template exercise rows: %w", err)
	}

	for i := range templates {
		if linked, ok := byTemplate[templates[i].ID]; ok {
			templates[i].ExerciseIDs = linked
		} else {
			templates[i].ExerciseIDs = []uuid.UUID{}
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a template and its exercise links.
func (r *Repo) Create(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := q.Exec(ctx, insertSQL, t.ID, t.Name, t.Description, t.CreatedBy, now)
	if err != nil {
		return domain.WorkoutTemplate{}, postgres.MapError(err, "workout_template", t.ID)
	}

	if err := insertLinks(ctx, q, t.ID, t.ExerciseIDs); err != nil {
		return domain.WorkoutTemplate{}, err
	}

	return t, nil
}

// Update overwrites a template's fields and replaces its exercise links.
// Returns domain.ErrNotFound if the template does not exist.
func (r *Repo) Update(ctx context.Context, t domain.WorkoutTemplate) (domain.WorkoutTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t.UpdatedAt = time.Now()

	tag, err := q.Exec(ctx, updateSQL, t.ID, t.Name, t.Description, t.UpdatedAt)
	if err != nil {
		return domain.WorkoutTemplate{}, postgres.MapError(err, "workout_template", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.WorkoutTemplate{}, fmt.Errorf("workout_template %s: %w", t.ID, domain.ErrNotFound)
	}

	if _, err := q.Exec(ctx, deleteLinksSQL, t.ID); err != nil {
		return domain.WorkoutTemplate{}, postgres.MapError(err, "workout_template", t.ID)
	}
	if err := insertLinks(ctx, q, t.ID, t.ExerciseIDs); err != nil {
		return domain.WorkoutTemplate{}, err
	}

	return t, nil
}

// Delete removes a template; exercise links cascade.
// Returns domain.ErrNotFound if the template does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "workout_template", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_template %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func insertLinks(ctx context.Context, q postgres.Querier, templateID uuid.UUID, exerciseIDs []uuid.UUID) error {
	for i, exerciseID := range exerciseIDs {
		_, err := q.Exec(ctx, insertLinkSQL, templateID, exerciseID, i+1)
		if err != nil {
			return postgres.MapError(err, "workout_template_exercise", exerciseID)
		}
	}
	return nil
}

func scanTemplate(row pgx.Row) (domain.WorkoutTemplate, error) {
	var t domain.WorkoutTemplate
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.WorkoutTemplate{}, err
	}
	return t, nil
}
