package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalRecord is a user's best performance for one exercise under one
// scoring kind. Records outlive the workout logs that produced them.
type PersonalRecord struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	ExerciseID          uuid.UUID
	Kind                RecordKind
	MaxValue            float64
	MaxReps             int
	MaxTimeSpentSeconds int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Metric collapses the record into the single comparable score used to
// decide whether a new performance beats it. Must stay in sync with the
// conditional-upsert predicate in the postgres record store.
func (r PersonalRecord) Metric() float64 {
	switch r.Kind {
	case RecordKindStrength:
		return r.MaxValue * float64(r.MaxReps)
	case RecordKindCardio:
		return r.MaxValue * float64(r.MaxTimeSpentSeconds)
	case RecordKindBodyweight:
		return float64(r.MaxReps)
	case RecordKindFlexibility:
		return float64(r.MaxTimeSpentSeconds)
	}
	return 0
}

// Beats reports whether r strictly improves on other. Equal metrics do not
// beat: ties keep the existing record.
func (r PersonalRecord) Beats(other PersonalRecord) bool {
	return r.Metric() > other.Metric()
}
