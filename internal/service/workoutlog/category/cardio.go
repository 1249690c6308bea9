package category

import "github.com/heartmarshall/fitlog-backend/internal/domain"

// Cardio scores sets by distance times time. Cardio contributes nothing to
// a workout's total load.
type Cardio struct{}

func (Cardio) Kind() domain.RecordKind { return domain.RecordKindCardio }

// BestSet returns the set with the highest distance-times-time product.
// The scan starts at zero with a strict comparison, so a non-empty list
// whose products are all zero yields no best set. Every set must carry
// both value and time spent.
func (Cardio) BestSet(sets []domain.PerformanceSet) (string, bool, error) {
	var best *domain.PerformanceSet
	var bestPerformance float64
	for i := range sets {
		set := &sets[i]
		if set.Value == nil || set.TimeSpentSeconds == nil {
			return "", false, domain.NewValidationError("sets",
				"for cardio exercises, both value (distance) and time_spent are required")
		}
		if performance := *set.Value * float64(*set.TimeSpentSeconds); performance > bestPerformance {
			bestPerformance = performance
			best = set
		}
	}
	if best == nil {
		return "", false, nil
	}
	return formatNumber(*best.Value) + " km | " + formatClock(*best.TimeSpentSeconds), true, nil
}

func (Cardio) TotalLoad([]domain.PerformanceSet) float64 { return 0 }

// RecordCandidate keeps the value/time pair of the best-scoring set; both
// fields are always replaced together.
func (Cardio) RecordCandidate(sets []domain.PerformanceSet) (domain.PersonalRecord, bool) {
	if len(sets) == 0 {
		return domain.PersonalRecord{}, false
	}

	var bestPerformance, bestValue float64
	var bestTimeSpent int
	for _, set := range sets {
		value := floatOrZero(set.Value)
		timeSpent := intOrZero(set.TimeSpentSeconds)
		if performance := value * float64(timeSpent); performance > bestPerformance {
			bestPerformance, bestValue, bestTimeSpent = performance, value, timeSpent
		}
	}

	return domain.PersonalRecord{
		Kind:                domain.RecordKindCardio,
		MaxValue:            bestValue,
		MaxTimeSpentSeconds: bestTimeSpent,
	}, true
}
