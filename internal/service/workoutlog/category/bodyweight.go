package category

import "github.com/heartmarshall/fitlog-backend/internal/domain"

// Bodyweight scores sets by repetition count alone.
type Bodyweight struct{}

func (Bodyweight) Kind() domain.RecordKind { return domain.RecordKindBodyweight }

// BestSet returns the set with the most reps; ties keep the earlier set.
// Every set must carry reps.
func (Bodyweight) BestSet(sets []domain.PerformanceSet) (string, bool, error) {
	var best *domain.PerformanceSet
	for i := range sets {
		set := &sets[i]
		if set.Reps == nil {
			return "", false, domain.NewValidationError("sets",
				"for bodyweight exercises, reps are required")
		}
		if best == nil || *set.Reps > *best.Reps {
			best = set
		}
	}
	if best == nil {
		return "", false, nil
	}
	return formatNumber(float64(*best.Reps)) + " reps", true, nil
}

func (Bodyweight) TotalLoad([]domain.PerformanceSet) float64 { return 0 }

// RecordCandidate keeps the highest rep count seen.
func (Bodyweight) RecordCandidate(sets []domain.PerformanceSet) (domain.PersonalRecord, bool) {
	if len(sets) == 0 {
		return domain.PersonalRecord{}, false
	}

	var maxReps int
	for _, set := range sets {
		if reps := intOrZero(set.Reps); reps > maxReps {
			maxReps = reps
		}
	}

	return domain.PersonalRecord{
		Kind:    domain.RecordKindBodyweight,
		MaxReps: maxReps,
	}, true
}
