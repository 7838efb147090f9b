package engine

import (
	"fmt"
	"math"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

const (
	baseScore = 100.0

	// OptimalSleepMinutes is the 8h optimum that sleep debt is measured
	// against.
	OptimalSleepMinutes = 480

	// Duration band, minutes. Oversleep is penalized at 2/3 the
	// undersleep rate.
	durationFloor      = 420
	durationCeiling    = 540
	undersleepPerHour  = 15.0
	oversleepPerHour   = 10.0
	debtPenaltyPerHour = 5.0
)

// QualityResult is the scorer output: the clamped 0-100 score and the
// per-factor breakdown that reconciles with it.
type QualityResult struct {
	Score     int
	Breakdown map[string]domain.FactorBreakdown
}

// Derive recomputes every derived field of an entry from its raw fields:
// duration, debt, violations, quality score and breakdown. It is the single
// save-path entry point and is idempotent.
func Derive(e *domain.SleepEntry) {
	e.SleepDuration = ForwardSpan(e.Bedtime, e.Waketime)
	e.SleepDebt = 0
	if e.SleepDuration < OptimalSleepMinutes {
		e.SleepDebt = OptimalSleepMinutes - e.SleepDuration
	}
	e.Violations = Evaluate(e)

	result := Score(e)
	e.QualityScore = result.Score
	e.Breakdown = result.Breakdown
}

// Score combines every factor model into a single 0-100 score. The
// environment bonus is the only additive term; every other contribution is
// subtractive. SleepDuration and SleepDebt must already be derived.
func Score(e *domain.SleepEntry) QualityResult {
	var durationPenalty float64
	switch {
	case e.SleepDuration < durationFloor:
		durationPenalty = float64(durationFloor-e.SleepDuration) / 60 * undersleepPerHour
	case e.SleepDuration > durationCeiling:
		durationPenalty = float64(e.SleepDuration-durationCeiling) / 60 * oversleepPerHour
	}

	debtPenalty := float64(e.SleepDebt) / 60 * debtPenaltyPerHour

	circadian := ScoreCircadian(e.Bedtime, e.Waketime)
	caffeine := ScoreCaffeine(e.Caffeine, e.Bedtime)
	alcohol := ScoreAlcohol(e.Alcohol, e.Bedtime)
	exercise := ExercisePenalty(e.Exercise, e.Bedtime)
	screens := ScreenPenalty(e.Screens, e.Bedtime)
	meals := MealPenalty(e.Meals, e.Bedtime)
	env := ScoreEnvironment(e.Environment)

	totalPenalties := durationPenalty + debtPenalty + circadian.Penalty +
		caffeine.Penalty + alcohol.Penalty + exercise + screens + meals +
		env.Penalties

	score := math.Round(baseScore - totalPenalties + env.Bonus)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	// The environment entry carries net bonus-penalties and may be positive
	// in the user's favor; every other entry stores what was subtracted.
	breakdown := map[string]domain.FactorBreakdown{
		"duration": {
			DisplayValue: FormatDuration(e.SleepDuration),
			Penalty:      round1(durationPenalty),
		},
		"debt": {
			DisplayValue: FormatDuration(e.SleepDebt),
			Penalty:      round1(debtPenalty),
		},
		"circadian": {
			DisplayValue: fmt.Sprintf("bed %dm off, wake %dm off", circadian.BedDeviation, circadian.WakeDeviation),
			Penalty:      round1(circadian.Penalty),
		},
		"caffeine": {
			DisplayValue: fmt.Sprintf("%.0fmg residual", caffeine.RemainingMg),
			Penalty:      round1(caffeine.Penalty),
		},
		"alcohol": {
			DisplayValue: fmt.Sprintf("%.1f units", alcohol.TotalUnits),
			Penalty:      round1(alcohol.Penalty),
		},
		"exercise": {
			DisplayValue: fmt.Sprintf("%d sessions", len(e.Exercise)),
			Penalty:      round1(exercise),
		},
		"screens": {
			DisplayValue: fmt.Sprintf("%d sessions", len(e.Screens)),
			Penalty:      round1(screens),
		},
		"meals": {
			DisplayValue: fmt.Sprintf("%d meals", len(e.Meals)),
			Penalty:      round1(meals),
		},
		"environment": {
			DisplayValue: fmt.Sprintf("%.0f°F, %.0f lux, %.0f dB", e.Environment.TemperatureF, e.Environment.LightLux, e.Environment.NoiseDB),
			Penalty:      round1(env.Bonus - env.Penalties),
		},
	}

	return QualityResult{
		Score:     int(score),
		Breakdown: breakdown,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
