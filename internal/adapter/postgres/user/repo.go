// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const userColumns = `id, name, email, role, active, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const listSQL = `
SELECT ` + userColumns + `
FROM users
ORDER BY name`

const insertSQL = `
INSERT INTO users (id, name, email, role, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`

const setActiveSQL = `
UPDATE users
SET active = $2, updated_at = $3
WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email. The caller normalizes the address.
// Returns domain.ErrNotFound if no user has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// List returns all users ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

// Create inserts a new user and returns it with generated fields set.
// Returns domain.ErrAlreadyExists when the email is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := q.Exec(ctx, insertSQL, u.ID, u.Name, u.Email, u.Role, u.Active, now)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}

	return u, nil
}

// SetActive flips a user's active flag.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, setActiveSQL, id, active, time.Now())
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}
