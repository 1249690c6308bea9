package category

import "github.com/heartmarshall/fitlog-backend/internal/domain"

// Strength scores weighted sets by volume (weight times reps). It is the
// only category that contributes to a workout's total load.
type Strength struct{}

func (Strength) Kind() domain.RecordKind { return domain.RecordKindStrength }

// BestSet returns the set with the highest volume. Ties keep the earlier
// set. Every set must carry both value and reps.
func (Strength) BestSet(sets []domain.PerformanceSet) (string, bool, error) {
	var best *domain.PerformanceSet
	for i := range sets {
		set := &sets[i]
		if set.Value == nil || set.Reps == nil {
			return "", false, domain.NewValidationError("sets",
				"for strength exercises, both value and reps are required")
		}
		if best == nil || *set.Value*float64(*set.Reps) > *best.Value*float64(*best.Reps) {
			best = set
		}
	}
	if best == nil {
		return "", false, nil
	}
	return formatNumber(*best.Value) + " kg x " + formatNumber(float64(*best.Reps)) + " reps", true, nil
}

// TotalLoad sums value times reps over the sets that carry both fields.
func (Strength) TotalLoad(sets []domain.PerformanceSet) float64 {
	var total float64
	for _, set := range sets {
		if set.Value != nil && set.Reps != nil {
			total += *set.Value * float64(*set.Reps)
		}
	}
	return total
}

// RecordCandidate keeps the value/reps pair of the highest-volume set.
// Missing fields count as zero here; validation happens in BestSet.
func (Strength) RecordCandidate(sets []domain.PerformanceSet) (domain.PersonalRecord, bool) {
	if len(sets) == 0 {
		return domain.PersonalRecord{}, false
	}

	// Same first-wins scan as BestSet so the candidate is the rendered set.
	bestValue := floatOrZero(sets[0].Value)
	bestReps := intOrZero(sets[0].Reps)
	for _, set := range sets[1:] {
		value := floatOrZero(set.Value)
		reps := intOrZero(set.Reps)
		if value*float64(reps) > bestValue*float64(bestReps) {
			bestValue, bestReps = value, reps
		}
	}

	return domain.PersonalRecord{
		Kind:     domain.RecordKindStrength,
		MaxValue: bestValue,
		MaxReps:  bestReps,
	}, true
}
