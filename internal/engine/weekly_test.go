package engine

import (
	"fmt"
	"testing"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

// steadyWeek builds n derived-looking entries with identical schedules.
func steadyWeek(n int) []domain.SleepEntry {
	entries := make([]domain.SleepEntry, n)
	for i := range entries {
		entries[i] = domain.SleepEntry{
			Date:          fmt.Sprintf("2024-03-%02d", 11+i),
			Bedtime:       "23:00",
			Waketime:      "07:00",
			SleepDuration: 480,
			QualityScore:  90,
			Violations:    []domain.Violation{},
		}
	}
	return entries
}

func TestBuildWeeklyReport_Empty(t *testing.T) {
	report := BuildWeeklyReport(nil)

	if report.Entries != 0 {
		t.Errorf("Entries = %d, want 0", report.Entries)
	}
	if report.DebtTrend.State != "Well rested" {
		t.Errorf("DebtTrend.State = %q, want Well rested", report.DebtTrend.State)
	}
	if report.Consistency.Score != 100 || report.Consistency.Rating != "Very consistent" {
		t.Errorf("Consistency = %+v, want perfect defaults", report.Consistency)
	}
	if report.ViolationFrequency == nil || report.Recommendations == nil {
		t.Error("frequency and recommendations must be empty slices, not nil")
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none", report.Recommendations)
	}
}

func TestBuildWeeklyReport_SteadyWeek(t *testing.T) {
	report := BuildWeeklyReport(steadyWeek(7))

	if report.Entries != 7 {
		t.Errorf("Entries = %d, want 7", report.Entries)
	}
	if report.FromDate != "2024-03-11" || report.ToDate != "2024-03-17" {
		t.Errorf("window = %s..%s, want 2024-03-11..2024-03-17", report.FromDate, report.ToDate)
	}
	if report.DebtTrend.State != "Well rested" || report.DebtTrend.TotalDebtMinutes != 0 {
		t.Errorf("DebtTrend = %+v, want well rested", report.DebtTrend)
	}
	if report.SocialJetlagMinutes != 0 {
		t.Errorf("SocialJetlagMinutes = %v, want 0", report.SocialJetlagMinutes)
	}
	if report.Consistency.BedtimeStdDevMinutes != 0 || report.Consistency.Score != 100 {
		t.Errorf("Consistency = %+v, want perfect", report.Consistency)
	}
	if report.Consistency.Rating != "Very consistent" {
		t.Errorf("Rating = %q, want Very consistent", report.Consistency.Rating)
	}
	if report.AvgQualityScore != 90 {
		t.Errorf("AvgQualityScore = %v, want 90", report.AvgQualityScore)
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none", report.Recommendations)
	}
}

func TestSocialJetlag(t *testing.T) {
	entries := steadyWeek(7)
	// Positional split: first 5 are weekdays, last 2 the weekend
	for i := 0; i < 5; i++ {
		entries[i].Waketime = "06:30"
	}
	entries[5].Waketime = "08:30"
	entries[6].Waketime = "08:30"

	report := BuildWeeklyReport(entries)
	if report.SocialJetlagMinutes != 120 {
		t.Errorf("SocialJetlagMinutes = %v, want 120", report.SocialJetlagMinutes)
	}

	// A partial window has no weekday/weekend shape
	report = BuildWeeklyReport(entries[:6])
	if report.SocialJetlagMinutes != 0 {
		t.Errorf("SocialJetlagMinutes = %v for 6 entries, want 0", report.SocialJetlagMinutes)
	}
}

func TestBedtimeConsistency_Buckets(t *testing.T) {
	// Two bedtimes 100 minutes apart: stddev 50, moderately consistent
	entries := steadyWeek(2)
	entries[0].Bedtime = "22:00"
	entries[1].Bedtime = "23:40"

	report := BuildWeeklyReport(entries)
	if report.Consistency.BedtimeStdDevMinutes != 50 {
		t.Errorf("BedtimeStdDevMinutes = %v, want 50", report.Consistency.BedtimeStdDevMinutes)
	}
	if report.Consistency.Score != 50 {
		t.Errorf("Score = %v, want 50", report.Consistency.Score)
	}
	if report.Consistency.Rating != "Moderately consistent" {
		t.Errorf("Rating = %q, want Moderately consistent", report.Consistency.Rating)
	}

	// Wild swings floor the score at 0
	entries[0].Bedtime = "20:00"
	entries[1].Bedtime = "03:00"
	report = BuildWeeklyReport(entries)
	if report.Consistency.Score != 0 {
		t.Errorf("Score = %v, want 0", report.Consistency.Score)
	}
	if report.Consistency.Rating != "Inconsistent" {
		t.Errorf("Rating = %q, want Inconsistent", report.Consistency.Rating)
	}
}

func TestViolationFrequency_Ordering(t *testing.T) {
	entries := steadyWeek(7)
	for i := 0; i < 4; i++ {
		entries[i].Violations = append(entries[i].Violations,
			domain.NewViolation(domain.ViolationLateScreenTime, "30 min before sleep"))
	}
	for i := 0; i < 3; i++ {
		entries[i].Violations = append(entries[i].Violations,
			domain.NewViolation(domain.ViolationCaffeineAtBedtime, "~80mg still active"))
	}
	// Two singletons to exercise the label tiebreak
	entries[0].Violations = append(entries[0].Violations,
		domain.NewViolation(domain.ViolationHeavyDrinking, "3.0 units consumed"))
	entries[1].Violations = append(entries[1].Violations,
		domain.NewViolation(domain.ViolationBedtimeDrift, "150 min from 22:30 target"))

	report := BuildWeeklyReport(entries)

	want := []struct {
		kind  domain.ViolationKind
		count int
	}{
		{domain.ViolationLateScreenTime, 4},
		{domain.ViolationCaffeineAtBedtime, 3},
		{domain.ViolationBedtimeDrift, 1}, // "Bedtime far off target" sorts before "Heavy drinking"
		{domain.ViolationHeavyDrinking, 1},
	}
	if len(report.ViolationFrequency) != len(want) {
		t.Fatalf("ViolationFrequency = %v, want %d rows", report.ViolationFrequency, len(want))
	}
	for i, w := range want {
		got := report.ViolationFrequency[i]
		if got.Kind != w.kind || got.Count != w.count {
			t.Errorf("frequency[%d] = %s/%d, want %s/%d", i, got.Kind, got.Count, w.kind, w.count)
		}
		if got.Label != w.kind.Label() {
			t.Errorf("frequency[%d].Label = %q, want %q", i, got.Label, w.kind.Label())
		}
	}
}

func TestRecommendations_AllRulesFireInTableOrder(t *testing.T) {
	entries := steadyWeek(7)
	for i := range entries {
		entries[i].SleepDebt = 30 // total 210 > 120
		entries[i].QualityScore = 50
	}
	for i := 0; i < 5; i++ {
		entries[i].Waketime = "06:30"
	}
	entries[5].Waketime = "08:30" // jetlag 120 > 90
	entries[6].Waketime = "08:30"
	for i := 0; i < 3; i++ {
		entries[i].Violations = append(entries[i].Violations,
			domain.NewViolation(domain.ViolationCaffeineAtBedtime, "~90mg still active"))
	}
	for i := 0; i < 4; i++ {
		entries[i].Violations = append(entries[i].Violations,
			domain.NewViolation(domain.ViolationLateScreenTime, "20 min before sleep"))
	}

	report := BuildWeeklyReport(entries)

	wantTitles := []string{
		"Recover sleep debt",
		"Reduce social jetlag",
		"Move your caffeine cutoff earlier",
		"Set a screen curfew",
		"Tighten your sleep routine",
	}
	if len(report.Recommendations) != len(wantTitles) {
		t.Fatalf("Recommendations = %d rows, want %d: %+v", len(report.Recommendations), len(wantTitles), report.Recommendations)
	}
	for i, title := range wantTitles {
		if report.Recommendations[i].Title != title {
			t.Errorf("recommendations[%d].Title = %q, want %q", i, report.Recommendations[i].Title, title)
		}
	}
}

func TestRecommendations_ThresholdsAreStrict(t *testing.T) {
	entries := steadyWeek(7)
	// Exactly 120 minutes of total debt does not trigger recovery
	for i := range entries {
		entries[i].SleepDebt = 0
	}
	entries[0].SleepDebt = 120

	report := BuildWeeklyReport(entries)
	for _, rec := range report.Recommendations {
		if rec.Title == "Recover sleep debt" {
			t.Error("debt recovery fired at exactly 120 minutes")
		}
	}
	if report.DebtTrend.State != "Accumulating deficit" {
		t.Errorf("DebtTrend.State = %q, want Accumulating deficit", report.DebtTrend.State)
	}

	// Two caffeine violations stay below the advice threshold
	entries = steadyWeek(7)
	for i := 0; i < 2; i++ {
		entries[i].Violations = append(entries[i].Violations,
			domain.NewViolation(domain.ViolationCaffeineAtBedtime, "~70mg still active"))
	}
	report = BuildWeeklyReport(entries)
	if len(report.Recommendations) != 0 {
		t.Errorf("Recommendations = %+v, want none", report.Recommendations)
	}
}

func TestDebtTrend_Averages(t *testing.T) {
	entries := steadyWeek(4)
	debts := []int{0, 60, 30, 0}
	for i, d := range debts {
		entries[i].SleepDebt = d
	}

	report := BuildWeeklyReport(entries)
	if report.DebtTrend.TotalDebtMinutes != 90 {
		t.Errorf("TotalDebtMinutes = %d, want 90", report.DebtTrend.TotalDebtMinutes)
	}
	if report.DebtTrend.AvgDebtMinutes != 22.5 {
		t.Errorf("AvgDebtMinutes = %v, want 22.5", report.DebtTrend.AvgDebtMinutes)
	}
}
