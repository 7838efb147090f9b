package engine

// Fixed circadian targets.
const (
	TargetBedtime  = "22:30"
	TargetWaketime = "06:30"

	// deviationAllowance is the free band around each target, minutes.
	deviationAllowance = 90

	// Bedtime drift is weighted 1.5x heavier than wake drift: delayed sleep
	// onset disturbs the rhythm more than a shifted alarm.
	bedDriftWeight  = 0.3
	wakeDriftWeight = 0.2
)

// CircadianResult is the circadian alignment model output.
type CircadianResult struct {
	// Shortest clock distance from the bedtime target, minutes
	BedDeviation int
	// Shortest clock distance from the waketime target, minutes
	WakeDeviation int
	Penalty       float64
}

// ScoreCircadian penalizes deviation from the fixed bed/wake targets beyond
// the free band.
func ScoreCircadian(bedtime, waketime string) CircadianResult {
	result := CircadianResult{
		BedDeviation:  CircularDeviation(bedtime, TargetBedtime),
		WakeDeviation: CircularDeviation(waketime, TargetWaketime),
	}

	if over := result.BedDeviation - deviationAllowance; over > 0 {
		result.Penalty += float64(over) * bedDriftWeight
	}
	if over := result.WakeDeviation - deviationAllowance; over > 0 {
		result.Penalty += float64(over) * wakeDriftWeight
	}
	return result
}
