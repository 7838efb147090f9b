package engine

import (
	"fmt"
	"math"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

// Hard-violation thresholds. These are intentionally stricter than the
// scorer's penalty windows: medium-intensity exercise and moderate screen
// content cost score points but never raise a violation.
const (
	minSleepMinutes       = 420
	caffeineViolationMg   = 50.0
	alcoholViolationUnits = 2.0
	exerciseViolationHrs  = 3.0
	screenViolationHrs    = 1.0
	bedDriftViolationMins = 120
)

// Evaluate runs every rule check against an entry and returns the violations
// in fixed evaluation order. Checks are independent; any number may fire.
// SleepDuration must already be derived.
func Evaluate(e *domain.SleepEntry) []domain.Violation {
	violations := []domain.Violation{}

	if e.SleepDuration < minSleepMinutes {
		violations = append(violations, domain.NewViolation(
			domain.ViolationSleepDeprivation,
			fmt.Sprintf("only %s of sleep (minimum 7h)", FormatDuration(e.SleepDuration)),
		))
	}

	if caffeine := ScoreCaffeine(e.Caffeine, e.Bedtime); caffeine.RemainingMg > caffeineViolationMg {
		violations = append(violations, domain.NewViolation(
			domain.ViolationCaffeineAtBedtime,
			fmt.Sprintf("~%.0fmg still active", math.Round(caffeine.RemainingMg)),
		))
	}

	var totalUnits float64
	for _, d := range e.Alcohol {
		totalUnits += d.Units
	}
	if totalUnits > alcoholViolationUnits {
		violations = append(violations, domain.NewViolation(
			domain.ViolationHeavyDrinking,
			fmt.Sprintf("%.1f units consumed", totalUnits),
		))
	}

	for _, s := range e.Exercise {
		h := HoursBefore(s.Time, e.Bedtime)
		if s.Intensity == domain.IntensityHigh && h < exerciseViolationHrs {
			violations = append(violations, domain.NewViolation(
				domain.ViolationLateExercise,
				fmt.Sprintf("%.1fh before bed", h),
			))
		}
	}

	for _, s := range e.Screens {
		h := HoursBefore(s.EndTime, e.Bedtime)
		if h < screenViolationHrs {
			violations = append(violations, domain.NewViolation(
				domain.ViolationLateScreenTime,
				fmt.Sprintf("%d min before sleep", int(math.Round(h*60))),
			))
		}
	}

	if dev := CircularDeviation(e.Bedtime, TargetBedtime); dev > bedDriftViolationMins {
		violations = append(violations, domain.NewViolation(
			domain.ViolationBedtimeDrift,
			fmt.Sprintf("%d min from %s target", dev, TargetBedtime),
		))
	}

	return violations
}
