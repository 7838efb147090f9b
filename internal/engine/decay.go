package engine

import (
	"math"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

const (
	// CaffeineHalfLifeHours is the elimination half-life used for the
	// exponential decay of caffeine.
	CaffeineHalfLifeHours = 5.0
	// caffeinePenaltyPerMg converts residual caffeine at bedtime to score points.
	caffeinePenaltyPerMg = 0.15

	// bacPerUnit is the blood-alcohol contribution of one standard drink.
	bacPerUnit = 0.02
	// bacClearancePerHour is the linear clearance rate in %BAC per hour.
	bacClearancePerHour = 0.015
	// bacPenaltyFactor converts residual BAC at bedtime to score points.
	bacPenaltyFactor = 100.0
	// fragmentationPerUnit is charged per unit regardless of elapsed time:
	// alcohol fragments sleep architecture even after BAC clears.
	fragmentationPerUnit = 8.0
)

// CaffeineResult is the caffeine decay model output.
type CaffeineResult struct {
	// Residual caffeine still active at bedtime, mg
	RemainingMg float64
	Penalty     float64
}

// ScoreCaffeine sums the residual of every intake at bedtime using
// half-life decay and converts the total to a penalty.
func ScoreCaffeine(intakes []domain.CaffeineIntake, bedtime string) CaffeineResult {
	var remaining float64
	for _, in := range intakes {
		halfLives := HoursBefore(in.Time, bedtime) / CaffeineHalfLifeHours
		remaining += in.Mg * math.Pow(0.5, halfLives)
	}
	return CaffeineResult{
		RemainingMg: remaining,
		Penalty:     remaining * caffeinePenaltyPerMg,
	}
}

// AlcoholResult is the alcohol clearance model output.
type AlcoholResult struct {
	TotalUnits float64
	// BAC still present at bedtime after linear clearance
	RemainingBAC         float64
	BACPenalty           float64
	FragmentationPenalty float64
	Penalty              float64
}

// ScoreAlcohol applies linear BAC clearance per drink and adds a
// time-independent fragmentation charge per unit.
func ScoreAlcohol(drinks []domain.AlcoholDrink, bedtime string) AlcoholResult {
	var result AlcoholResult
	for _, d := range drinks {
		result.TotalUnits += d.Units
		initial := d.Units * bacPerUnit
		cleared := bacClearancePerHour * HoursBefore(d.Time, bedtime)
		result.RemainingBAC += math.Max(0, initial-cleared)
	}
	result.BACPenalty = result.RemainingBAC * bacPenaltyFactor
	result.FragmentationPenalty = result.TotalUnits * fragmentationPerUnit
	result.Penalty = result.BACPenalty + result.FragmentationPenalty
	return result
}
