package workoutlog

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

func scanLog(row pgx.Row) (domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	err := row.Scan(
		&log.ID, &log.UserID, &log.Name, &log.Date, &log.DurationMinutes,
		&log.TotalLoadKg, &log.RecordCount, &log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return domain.WorkoutLog{}, err
	}
	log.Exercises = []domain.LoggedExercise{}
	return log, nil
}

func scanLogs(rows pgx.Rows) ([]domain.WorkoutLog, error) {
	logs := []domain.WorkoutLog{}
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout_log row: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout_log rows: %w", err)
	}
	return logs, nil
}
