// Package category contains the per-category scoring strategies for workout
// evaluation: best-set selection, total-load computation and personal-record
// candidates. The package is a pure algorithm kernel with no storage access.
package category

import (
	"fmt"
	"strconv"

	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

// Strategy scores the sets of one exercise category.
type Strategy interface {
	// Kind is the canonical record kind results are stored under.
	Kind() domain.RecordKind

	// BestSet picks the best set and renders its human-readable summary.
	// ok is false when no set qualifies (empty input, or no set scored
	// above zero for categories that require it). A validation error means
	// a set is missing a field the category requires.
	BestSet(sets []domain.PerformanceSet) (summary string, ok bool, err error)

	// TotalLoad returns the total load in kg the sets contribute to the
	// workout. Only weighted categories contribute; the rest return 0.
	TotalLoad(sets []domain.PerformanceSet) float64

	// RecordCandidate builds the personal-record row the sets would claim.
	// ok is false for an empty set list, which never claims a record.
	// UserID and ExerciseID are left for the caller to fill in.
	RecordCandidate(sets []domain.PerformanceSet) (domain.PersonalRecord, bool)
}

// ForCategory returns the strategy for a category name. Legs shares the
// Strength strategy; Balance and Endurance share Flexibility. An unknown
// name is a data-integrity fault and fails the whole submission.
func ForCategory(c domain.Category) (Strategy, error) {
	switch c {
	case domain.CategoryStrength, domain.CategoryLegs:
		return Strength{}, nil
	case domain.CategoryCardio:
		return Cardio{}, nil
	case domain.CategoryBodyweight:
		return Bodyweight{}, nil
	case domain.CategoryFlexibility, domain.CategoryBalance, domain.CategoryEndurance:
		return Flexibility{}, nil
	default:
		return nil, fmt.Errorf("category %q: %w", c, domain.ErrUnknownCategory)
	}
}

// formatNumber renders a value the way it was entered: no trailing zeros,
// so 50 stays "50" and 52.5 stays "52.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatClock renders seconds as a zero-padded HH:MM:SS clock value.
// Durations of 24h and more wrap around, matching how the summaries have
// always been stored.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600%24, seconds/60%60, seconds%60)
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
