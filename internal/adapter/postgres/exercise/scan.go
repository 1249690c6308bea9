package exercise

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

func scanExercise(row pgx.Row) (domain.Exercise, error) {
	var ex domain.Exercise
	err := row.Scan(
		&ex.ID, &ex.OwnerID, &ex.Name, &ex.Category, &ex.Description, &ex.Instructions,
		&ex.CreatedAt, &ex.UpdatedAt, &ex.OwnerIsAdmin,
	)
	if err != nil {
		return domain.Exercise{}, err
	}
	return ex, nil
}

func scanExercises(rows pgx.Rows) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise row: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise rows: %w", err)
	}
	return exercises, nil
}
