package domain

// DebtTrend summarizes accumulated sleep debt over the analytics window.
type DebtTrend struct {
	// Mean sleep debt per entry, minutes
	AvgDebtMinutes float64 `json:"avg_debt_minutes" example:"35.5"`
	// Total debt across the window, minutes
	TotalDebtMinutes int `json:"total_debt_minutes" example:"240"`
	// "Accumulating deficit" or "Well rested"
	State string `json:"state" example:"Accumulating deficit"`
}

// Consistency scores how regular bedtimes were across the window.
type Consistency struct {
	// Population standard deviation of bedtime minute offsets
	BedtimeStdDevMinutes float64 `json:"bedtime_stddev_minutes" example:"24.3"`
	// max(0, 100 - stddev)
	Score float64 `json:"score" example:"75.7"`
	// Qualitative bucket
	Rating string `json:"rating" example:"Very consistent"`
}

// ViolationCount is one row of the violation-frequency histogram.
type ViolationCount struct {
	Kind  ViolationKind `json:"kind" example:"caffeine_at_bedtime"`
	Label string        `json:"label" example:"Caffeine at bedtime"`
	Count int           `json:"count" example:"3"`
}

// Recommendation is one suggested adjustment from the weekly rule table.
type Recommendation struct {
	Title string `json:"title" example:"Recover sleep debt"`
	Text  string `json:"text"`
}

// WeeklyReport aggregates the most recent (at most 7) entries.
// @Description Week-scale sleep analytics.
type WeeklyReport struct {
	// First and last dates in the window (empty when no entries)
	FromDate string `json:"from_date" example:"2024-03-05"`
	ToDate   string `json:"to_date" example:"2024-03-11"`
	// Number of entries aggregated
	Entries int `json:"entries" example:"7"`

	DebtTrend DebtTrend `json:"debt_trend"`
	// Wake-time gap between positional weekdays (first 5) and weekend
	// (last 2); zero unless the window holds exactly 7 entries
	SocialJetlagMinutes float64     `json:"social_jetlag_minutes" example:"85"`
	Consistency         Consistency `json:"consistency"`

	// Violations grouped by kind, most frequent first
	ViolationFrequency []ViolationCount `json:"violation_frequency"`

	// Mean quality score across the window
	AvgQualityScore float64 `json:"avg_quality_score" example:"71.4"`

	// Fired rows of the fixed recommendation rule table, in table order
	Recommendations []Recommendation `json:"recommendations"`
}
