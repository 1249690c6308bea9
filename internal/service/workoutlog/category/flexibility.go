package category

import "github.com/heartmarshall/fitlog-backend/internal/domain"

// Flexibility scores sets by time spent alone. Balance and Endurance share
// this strategy.
type Flexibility struct{}

func (Flexibility) Kind() domain.RecordKind { return domain.RecordKindFlexibility }

// BestSet returns the set with the longest time; ties keep the earlier set.
// Every set must carry time spent.
//
// The summary prints the raw seconds with a "minutes" label. The label is
// wrong, but stored best_set strings in historical rows use this exact
// format, so changing it would make old and new rows inconsistent.
func (Flexibility) BestSet(sets []domain.PerformanceSet) (string, bool, error) {
	var best *domain.PerformanceSet
	for i := range sets {
		set := &sets[i]
		if set.TimeSpentSeconds == nil {
			return "", false, domain.NewValidationError("sets",
				"for flexibility exercises, time_spent is required")
		}
		if best == nil || *set.TimeSpentSeconds > *best.TimeSpentSeconds {
			best = set
		}
	}
	if best == nil {
		return "", false, nil
	}
	return formatNumber(float64(*best.TimeSpentSeconds)) + " minutes", true, nil
}

func (Flexibility) TotalLoad([]domain.PerformanceSet) float64 { return 0 }

// RecordCandidate keeps the longest time seen.
func (Flexibility) RecordCandidate(sets []domain.PerformanceSet) (domain.PersonalRecord, bool) {
	if len(sets) == 0 {
		return domain.PersonalRecord{}, false
	}

	var maxTimeSpent int
	for _, set := range sets {
		if timeSpent := intOrZero(set.TimeSpentSeconds); timeSpent > maxTimeSpent {
			maxTimeSpent = timeSpent
		}
	}

	return domain.PersonalRecord{
		Kind:                domain.RecordKindFlexibility,
		MaxTimeSpentSeconds: maxTimeSpent,
	}, true
}
