package seeder

import (
	"github.com/heartmarshall/fitlog-backend/internal/domain"
)

func ptr(s string) *string { return &s }

// catalog is the predefined exercise set available to every user.
var catalog = []domain.Exercise{
	{
		Name:         "Bench Press",
		Category:     domain.CategoryStrength,
		Description:  ptr("Barbell press performed lying on a flat bench."),
		Instructions: ptr("Lower the bar to mid-chest, then press up until the arms are fully extended. Keep the feet flat and the shoulder blades retracted."),
	},
	{
		Name:         "Overhead Press",
		Category:     domain.CategoryStrength,
		Description:  ptr("Standing barbell press from the shoulders."),
		Instructions: ptr("Press the bar from the front of the shoulders straight overhead. Brace the core and avoid leaning back."),
	},
	{
		Name:         "Deadlift",
		Category:     domain.CategoryStrength,
		Description:  ptr("Barbell lift from the floor to a standing position."),
		Instructions: ptr("With a flat back, drive through the heels and extend the hips and knees together until standing upright."),
	},
	{
		Name:         "Barbell Squat",
		Category:     domain.CategoryLegs,
		Description:  ptr("Back squat with a barbell."),
		Instructions: ptr("With the bar on the upper back, sit down until the thighs are at least parallel to the floor, then stand back up."),
	},
	{
		Name:         "Leg Press",
		Category:     domain.CategoryLegs,
		Description:  ptr("Machine press performed with the legs."),
		Instructions: ptr("Lower the platform until the knees reach roughly ninety degrees, then press back without locking the knees."),
	},
	{
		Name:         "Running",
		Category:     domain.CategoryCardio,
		Description:  ptr("Outdoor or treadmill running."),
		Instructions: ptr("Keep a conversational pace for endurance sessions; log the distance covered and the time spent."),
	},
	{
		Name:         "Cycling",
		Category:     domain.CategoryCardio,
		Description:  ptr("Road or stationary cycling."),
		Instructions: ptr("Maintain a steady cadence. Log the distance covered and the time spent."),
	},
	{
		Name:         "Rowing",
		Category:     domain.CategoryCardio,
		Description:  ptr("Rowing machine intervals or steady state."),
		Instructions: ptr("Drive with the legs first, then the back, then the arms. Log the distance covered and the time spent."),
	},
	{
		Name:         "Pull-up",
		Category:     domain.CategoryBodyweight,
		Description:  ptr("Bodyweight pull on an overhead bar."),
		Instructions: ptr("From a dead hang, pull until the chin clears the bar, then lower under control."),
	},
	{
		Name:         "Push-up",
		Category:     domain.CategoryBodyweight,
		Description:  ptr("Bodyweight press from a plank position."),
		Instructions: ptr("Keep the body in a straight line, lower the chest to just above the floor and press back up."),
	},
	{
		Name:         "Hamstring Stretch",
		Category:     domain.CategoryFlexibility,
		Description:  ptr("Static stretch for the back of the thigh."),
		Instructions: ptr("Hinge at the hips with a straight back until a stretch is felt, and hold. Log the time spent holding."),
	},
	{
		Name:         "Single-leg Stand",
		Category:     domain.CategoryBalance,
		Description:  ptr("Static balance drill on one leg."),
		Instructions: ptr("Stand on one leg without support and hold the position. Log the time spent."),
	},
	{
		Name:         "Plank",
		Category:     domain.CategoryEndurance,
		Description:  ptr("Isometric core hold."),
		Instructions: ptr("Hold a straight line from head to heels on the forearms. Log the time spent holding."),
	},
}

// measureTypes is the standard body-measurement catalog.
var measureTypes = []domain.MeasureType{
	{Name: "Weight", Unit: "kg"},
	{Name: "Height", Unit: "cm"},
	{Name: "Body Fat", Unit: "%"},
	{Name: "Chest", Unit: "cm"},
	{Name: "Waist", Unit: "cm"},
	{Name: "Hips", Unit: "cm"},
	{Name: "Biceps", Unit: "cm"},
	{Name: "Thigh", Unit: "cm"},
}
