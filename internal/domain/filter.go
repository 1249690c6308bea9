package domain

import "time"

// ExerciseFilter narrows exercise searches. Zero values mean "any".
type ExerciseFilter struct {
	Name     string // case-insensitive substring
	Category *Category
}

// DateRange bounds workout-log searches by workout date, inclusive.
// A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}
