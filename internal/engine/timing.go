package engine

import "github.com/blaisecz/sleep-coach/internal/domain"

// Proximity thresholds, hours before bedtime.
const (
	highIntensityWindow   = 3.0
	cardioWindow          = 2.0
	mediumIntensityWindow = 2.0

	screenWindow        = 2.0
	screenContentWindow = 1.0

	largeMealWindow   = 3.0
	highFatWindow     = 4.0
	highProteinWindow = 2.0
)

// ExercisePenalty scores workout proximity to bedtime. The high-intensity,
// cardio and medium-intensity rules are independent and additive.
func ExercisePenalty(sessions []domain.ExerciseSession, bedtime string) float64 {
	var penalty float64
	for _, s := range sessions {
		h := HoursBefore(s.Time, bedtime)
		if s.Intensity == domain.IntensityHigh && h < highIntensityWindow {
			penalty += (highIntensityWindow - h) * 10
		}
		if s.Type == domain.ExerciseCardio && h < cardioWindow {
			penalty += 15
		}
		if s.Intensity == domain.IntensityMedium && h < mediumIntensityWindow {
			penalty += (mediumIntensityWindow - h) * 5
		}
	}
	return penalty
}

// ScreenPenalty scores screen exposure, keyed on each session's end time.
// The blue-light and content-type penalties stack; passive content never
// adds the content-type penalty.
func ScreenPenalty(sessions []domain.ScreenSession, bedtime string) float64 {
	var penalty float64
	for _, s := range sessions {
		h := HoursBefore(s.EndTime, bedtime)
		if h < screenWindow {
			penalty += 20
		}
		if h < screenContentWindow {
			switch s.ContentType {
			case domain.ContentActive:
				penalty += 30
			case domain.ContentModerate:
				penalty += 15
			}
		}
	}
	return penalty
}

// MealPenalty scores meal timing and composition near bedtime. All rules are
// additive.
func MealPenalty(meals []domain.Meal, bedtime string) float64 {
	var penalty float64
	for _, m := range meals {
		h := HoursBefore(m.Time, bedtime)
		if m.Size == domain.MealLarge && h < largeMealWindow {
			penalty += (largeMealWindow - h) * 8
		}
		if m.MacroProfile == domain.MacroHighFat && h < highFatWindow {
			penalty += (highFatWindow - h) * 5
		}
		if m.MacroProfile == domain.MacroHighProtein && h < highProteinWindow {
			penalty += 10
		}
	}
	return penalty
}
