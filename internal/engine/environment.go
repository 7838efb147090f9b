package engine

import "github.com/blaisecz/sleep-coach/internal/domain"

// Per-axis thresholds for the bedroom snapshot.
const (
	tempIdealLowF  = 60.0
	tempIdealHighF = 67.0
	lightMaxLux    = 50.0
	noiseMaxDB     = 30.0

	axisBonus = 5.0
)

// EnvironmentResult separates earned bonus from accumulated penalties.
// Each axis contributes to exactly one of the two.
type EnvironmentResult struct {
	Bonus     float64
	Penalties float64
}

// ScoreEnvironment scores the static bedroom snapshot. A non-exclusive
// bedroom costs nothing directly; it only forgoes the bonus.
func ScoreEnvironment(env domain.Environment) EnvironmentResult {
	var result EnvironmentResult

	switch {
	case env.TemperatureF < tempIdealLowF:
		result.Penalties += (tempIdealLowF - env.TemperatureF) * 2
	case env.TemperatureF > tempIdealHighF:
		result.Penalties += (env.TemperatureF - tempIdealHighF) * 2
	default:
		result.Bonus += axisBonus
	}

	if env.LightLux < lightMaxLux {
		result.Bonus += axisBonus
	} else {
		result.Penalties += (env.LightLux - lightMaxLux) * 0.1
	}

	if env.NoiseDB < noiseMaxDB {
		result.Bonus += axisBonus
	} else {
		result.Penalties += (env.NoiseDB - noiseMaxDB) * 0.5
	}

	if env.BedroomOnly {
		result.Bonus += axisBonus
	}

	return result
}
