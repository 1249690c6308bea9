package record

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

func scanRecord(row pgx.Row) (domain.PersonalRecord, error) {
	var rec domain.PersonalRecord
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.ExerciseID, &rec.Kind,
		&rec.MaxValue, &rec.MaxReps, &rec.MaxTimeSpentSeconds,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.PersonalRecord{}, err
	}
	return rec, nil
}

func scanRecords(rows pgx.Rows) ([]domain.PersonalRecord, error) {
	records := []domain.PersonalRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan personal_record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate personal_record rows: %w", err)
	}
	return records, nil
}
