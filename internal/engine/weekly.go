package engine

import (
	"math"
	"sort"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

const (
	// WeeklyWindow is the number of entries a weekly report covers.
	WeeklyWindow = 7
	// weekdaySplit: the first 5 entries of a full window count as weekdays,
	// the last 2 as the weekend. The split is positional, not calendar-aware.
	weekdaySplit = 5

	// Consistency buckets by bedtime standard deviation, minutes.
	veryConsistentStdDev = 30.0
	moderateStdDev       = 60.0

	// Recommendation rule-table thresholds.
	debtRecoveryMinutes      = 120
	jetlagAdviceMinutes      = 90.0
	caffeineAdviceViolations = 3
	screenAdviceViolations   = 4
	strictAdviceQuality      = 60.0
)

// BuildWeeklyReport aggregates the most recent window of entries, ordered by
// date ascending. An empty window yields the zero-valued defaults rather than
// an error.
func BuildWeeklyReport(entries []domain.SleepEntry) domain.WeeklyReport {
	report := domain.WeeklyReport{
		Entries:            len(entries),
		ViolationFrequency: []domain.ViolationCount{},
		Recommendations:    []domain.Recommendation{},
	}
	if len(entries) == 0 {
		report.DebtTrend.State = "Well rested"
		report.Consistency.Score = 100
		report.Consistency.Rating = "Very consistent"
		return report
	}

	report.FromDate = entries[0].Date
	report.ToDate = entries[len(entries)-1].Date

	report.DebtTrend = debtTrend(entries)
	report.SocialJetlagMinutes = socialJetlag(entries)
	report.Consistency = bedtimeConsistency(entries)
	report.ViolationFrequency = violationFrequency(entries)

	var qualitySum float64
	for _, e := range entries {
		qualitySum += float64(e.QualityScore)
	}
	report.AvgQualityScore = round1(qualitySum / float64(len(entries)))

	report.Recommendations = recommend(report)
	return report
}

func debtTrend(entries []domain.SleepEntry) domain.DebtTrend {
	trend := domain.DebtTrend{State: "Well rested"}
	for _, e := range entries {
		trend.TotalDebtMinutes += e.SleepDebt
	}
	trend.AvgDebtMinutes = round1(float64(trend.TotalDebtMinutes) / float64(len(entries)))
	if trend.TotalDebtMinutes > 0 {
		trend.State = "Accumulating deficit"
	}
	return trend
}

// socialJetlag is the gap between the mean weekday and weekend wake times.
// It requires a full window of exactly 7 entries; anything else yields 0.
// Group means are plain means of minute offsets, not true circular means.
func socialJetlag(entries []domain.SleepEntry) float64 {
	if len(entries) != WeeklyWindow {
		return 0
	}

	weekdayMean := meanWakeMinutes(entries[:weekdaySplit])
	weekendMean := meanWakeMinutes(entries[weekdaySplit:])

	d := math.Abs(weekdayMean - weekendMean)
	if d > minutesPerDay/2 {
		d = minutesPerDay - d
	}
	return round1(d)
}

func meanWakeMinutes(entries []domain.SleepEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += float64(Minutes(e.Waketime))
	}
	return sum / float64(len(entries))
}

func bedtimeConsistency(entries []domain.SleepEntry) domain.Consistency {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = float64(Minutes(e.Bedtime))
	}

	stdDev := populationStdDev(values)

	consistency := domain.Consistency{
		BedtimeStdDevMinutes: round1(stdDev),
		Score:                round1(math.Max(0, 100-stdDev)),
	}
	switch {
	case stdDev < veryConsistentStdDev:
		consistency.Rating = "Very consistent"
	case stdDev < moderateStdDev:
		consistency.Rating = "Moderately consistent"
	default:
		consistency.Rating = "Inconsistent"
	}
	return consistency
}

func populationStdDev(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sumSquares float64
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

func violationFrequency(entries []domain.SleepEntry) []domain.ViolationCount {
	counts := make(map[domain.ViolationKind]int)
	for _, e := range entries {
		for _, v := range e.Violations {
			counts[v.Kind]++
		}
	}

	frequency := make([]domain.ViolationCount, 0, len(counts))
	for kind, count := range counts {
		frequency = append(frequency, domain.ViolationCount{
			Kind:  kind,
			Label: kind.Label(),
			Count: count,
		})
	}
	sort.Slice(frequency, func(i, j int) bool {
		if frequency[i].Count != frequency[j].Count {
			return frequency[i].Count > frequency[j].Count
		}
		return frequency[i].Label < frequency[j].Label
	})
	return frequency
}

// recommend evaluates the fixed rule table against the aggregates. Multiple
// rows may fire; output order is table order.
func recommend(report domain.WeeklyReport) []domain.Recommendation {
	recommendations := []domain.Recommendation{}

	if report.DebtTrend.TotalDebtMinutes > debtRecoveryMinutes {
		recommendations = append(recommendations, domain.Recommendation{
			Title: "Recover sleep debt",
			Text:  "You are carrying more than two hours of sleep debt this week. Move bedtime 30-45 minutes earlier for the next few nights until the debt clears.",
		})
	}
	if report.SocialJetlagMinutes > jetlagAdviceMinutes {
		recommendations = append(recommendations, domain.Recommendation{
			Title: "Reduce social jetlag",
			Text:  "Your weekend wake time drifts more than 90 minutes from weekdays. Keep wake time within an hour of your weekday schedule, even on days off.",
		})
	}
	if countViolations(report.ViolationFrequency, domain.ViolationCaffeineAtBedtime) >= caffeineAdviceViolations {
		recommendations = append(recommendations, domain.Recommendation{
			Title: "Move your caffeine cutoff earlier",
			Text:  "Caffeine was still active at bedtime on 3 or more days. Set a hard cutoff 8-10 hours before your target bedtime.",
		})
	}
	if countViolations(report.ViolationFrequency, domain.ViolationLateScreenTime) >= screenAdviceViolations {
		recommendations = append(recommendations, domain.Recommendation{
			Title: "Set a screen curfew",
			Text:  "Screens ran into the final hour before bed on 4 or more days. End screen use at least an hour before bedtime.",
		})
	}
	if report.AvgQualityScore < strictAdviceQuality {
		recommendations = append(recommendations, domain.Recommendation{
			Title: "Tighten your sleep routine",
			Text:  "Average quality fell below 60 this week. Enforce a fixed bedtime, a dark cool bedroom, and no caffeine, alcohol, or screens near bedtime until scores recover.",
		})
	}

	return recommendations
}

func countViolations(frequency []domain.ViolationCount, kind domain.ViolationKind) int {
	for _, f := range frequency {
		if f.Kind == kind {
			return f.Count
		}
	}
	return 0
}
