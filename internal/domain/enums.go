package domain

// Category classifies an exercise and selects how its sets are scored.
type Category string

const (
	CategoryStrength    Category = "Strength"
	CategoryLegs        Category = "Legs"
	CategoryCardio      Category = "Cardio"
	CategoryFlexibility Category = "Flexibility"
	CategoryBalance     Category = "Balance"
	CategoryEndurance   Category = "Endurance"
	CategoryBodyweight  Category = "Bodyweight"
)

func (c Category) String() string { return string(c) }

// IsValid reports whether the category is one of the known names.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStrength, CategoryLegs, CategoryCardio, CategoryFlexibility,
		CategoryBalance, CategoryEndurance, CategoryBodyweight:
		return true
	}
	return false
}

// Categories returns all known category names, in a stable order.
func Categories() []Category {
	return []Category{
		CategoryStrength, CategoryLegs, CategoryCardio, CategoryFlexibility,
		CategoryBalance, CategoryEndurance, CategoryBodyweight,
	}
}

// RecordKind is the canonical scoring family a personal record is stored
// under. Aliased categories (Legs, Balance, Endurance) collapse into their
// canonical kind, so a squat PR set via "Legs" is the same row as one set
// via "Strength".
type RecordKind string

const (
	RecordKindStrength    RecordKind = "Strength"
	RecordKindCardio      RecordKind = "Cardio"
	RecordKindBodyweight  RecordKind = "Bodyweight"
	RecordKindFlexibility RecordKind = "Flexibility"
)

func (k RecordKind) String() string { return string(k) }

// IsValid reports whether the kind is one of the four canonical kinds.
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindStrength, RecordKindCardio, RecordKindBodyweight, RecordKindFlexibility:
		return true
	}
	return false
}

// UserRole defines the user's access level.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

// IsValid reports whether the role is known.
func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}
