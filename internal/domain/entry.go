package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealSize categorizes how heavy a meal was.
type MealSize string

const (
	MealSmall  MealSize = "small"
	MealMedium MealSize = "medium"
	MealLarge  MealSize = "large"
)

// MacroProfile is the dominant macronutrient profile of a meal.
type MacroProfile string

const (
	MacroBalanced    MacroProfile = "balanced"
	MacroHighCarb    MacroProfile = "high-carb"
	MacroHighProtein MacroProfile = "high-protein"
	MacroHighFat     MacroProfile = "high-fat"
)

// ExerciseType is the category of a workout session.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
)

// Intensity is the perceived effort of a workout.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// ContentType describes how engaging screen content was.
type ContentType string

const (
	ContentPassive  ContentType = "passive"
	ContentModerate ContentType = "moderate"
	ContentActive   ContentType = "active"
)

// CaffeineIntake is a single caffeine event (coffee, tea, energy drink).
type CaffeineIntake struct {
	// Clock time of intake (24h HH:MM)
	Time string `json:"time" validate:"required,clocktime" example:"14:00"`
	// Caffeine amount in milligrams
	Mg float64 `json:"mg" validate:"gte=0" example:"95"`
}

// AlcoholDrink is a single alcohol event measured in standard units.
type AlcoholDrink struct {
	// Clock time of the drink (24h HH:MM)
	Time string `json:"time" validate:"required,clocktime" example:"20:00"`
	// Standard drink units (may be fractional)
	Units float64 `json:"units" validate:"gte=0" example:"1.5"`
}

// Meal is a single food intake event.
type Meal struct {
	Time string `json:"time" validate:"required,clocktime" example:"19:30"`
	// Meal size
	Size MealSize `json:"size" validate:"required,oneof=small medium large" example:"large"`
	// Dominant macronutrient profile
	MacroProfile MacroProfile `json:"macro_profile" validate:"required,oneof=balanced high-carb high-protein high-fat" example:"balanced"`
}

// ExerciseSession is a single workout.
type ExerciseSession struct {
	Time string `json:"time" validate:"required,clocktime" example:"18:00"`
	// Workout category
	Type ExerciseType `json:"type" validate:"required,oneof=strength cardio flexibility" example:"cardio"`
	// Perceived intensity
	Intensity Intensity `json:"intensity" validate:"required,oneof=low medium high" example:"high"`
	// Session length in minutes
	DurationMin int `json:"duration_min" validate:"gte=0" example:"45"`
}

// ScreenSession is a block of screen exposure. Proximity to bedtime is
// measured from EndTime.
type ScreenSession struct {
	StartTime string `json:"start_time" validate:"required,clocktime" example:"21:00"`
	EndTime   string `json:"end_time" validate:"required,clocktime" example:"22:45"`
	// How engaging the content was
	ContentType ContentType `json:"content_type" validate:"required,oneof=passive moderate active" example:"active"`
}

// Environment is a static snapshot of the bedroom at bedtime.
type Environment struct {
	// Room temperature in Fahrenheit
	TemperatureF float64 `json:"temperature_f" example:"68"`
	// Ambient light in lux
	LightLux float64 `json:"light_lux" validate:"gte=0" example:"0"`
	// Ambient noise in decibels
	NoiseDB float64 `json:"noise_db" validate:"gte=0" example:"30"`
	// Whether the bedroom is used for sleep only
	BedroomOnly bool `json:"bedroom_only" example:"true"`
}

// DefaultEnvironment returns the assumed bedroom snapshot when none is logged.
func DefaultEnvironment() Environment {
	return Environment{TemperatureF: 68, LightLux: 0, NoiseDB: 30, BedroomOnly: true}
}

// FactorBreakdown is one factor's contribution to the quality score.
// Penalty is the signed contribution: positive values were subtracted from the
// score; the environment entry holds net bonus minus penalties and may be
// positive in the user's favor.
type FactorBreakdown struct {
	// Human-readable value, e.g. "7h30m" or "2 sessions"
	DisplayValue string `json:"display_value" example:"7h30m"`
	// Signed score contribution, rounded to one decimal
	Penalty float64 `json:"penalty" example:"4.2"`
}

// SleepEntry is one day's log. Date is the logical key: saving an entry for an
// existing date replaces it wholesale. All derived fields are recomputed from
// the raw fields on every save and never edited independently.
type SleepEntry struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_entries_date" json:"date"`

	Bedtime  string `gorm:"type:varchar(5);not null" json:"bedtime"`
	Waketime string `gorm:"type:varchar(5);not null" json:"waketime"`

	// Derived: waketime - bedtime measured forward across midnight, minutes
	SleepDuration int `gorm:"not null" json:"sleep_duration"`
	// Derived: max(0, 480 - sleepDuration), minutes
	SleepDebt int `gorm:"not null" json:"sleep_debt"`

	Caffeine    []CaffeineIntake  `gorm:"serializer:json" json:"caffeine"`
	Alcohol     []AlcoholDrink    `gorm:"serializer:json" json:"alcohol"`
	Meals       []Meal            `gorm:"serializer:json" json:"meals"`
	Exercise    []ExerciseSession `gorm:"serializer:json" json:"exercise"`
	Screens     []ScreenSession   `gorm:"serializer:json" json:"screens"`
	Environment Environment       `gorm:"serializer:json" json:"environment"`

	// Derived on every save
	Violations   []Violation                `gorm:"serializer:json" json:"violations"`
	QualityScore int                        `gorm:"type:smallint;not null" json:"quality_score"`
	Breakdown    map[string]FactorBreakdown `gorm:"serializer:json" json:"breakdown"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SleepEntry) TableName() string {
	return "sleep_entries"
}

// SaveEntryRequest is the request body for saving a day's log.
// @Description Raw daily log; all derived fields are computed server-side.
type SaveEntryRequest struct {
	// Calendar date (YYYY-MM-DD), the unique key of the entry
	Date string `json:"date" validate:"required,dateiso" example:"2024-03-11"`
	// Bedtime (24h HH:MM)
	Bedtime string `json:"bedtime" validate:"required,clocktime" example:"23:15"`
	// Wake time (24h HH:MM); measured forward across midnight from bedtime
	Waketime string `json:"waketime" validate:"required,clocktime" example:"07:00"`

	Caffeine []CaffeineIntake  `json:"caffeine,omitempty" validate:"omitempty,dive"`
	Alcohol  []AlcoholDrink    `json:"alcohol,omitempty" validate:"omitempty,dive"`
	Meals    []Meal            `json:"meals,omitempty" validate:"omitempty,dive"`
	Exercise []ExerciseSession `json:"exercise,omitempty" validate:"omitempty,dive"`
	Screens  []ScreenSession   `json:"screens,omitempty" validate:"omitempty,dive"`
	// Bedroom snapshot; defaults to 68°F, 0 lux, 30 dB, bedroom-only
	Environment *Environment `json:"environment,omitempty"`
}

// SleepEntryResponse is the response body for entry endpoints.
// @Description Fully derived daily entry.
type SleepEntryResponse struct {
	ID            uuid.UUID                  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date          string                     `json:"date" example:"2024-03-11"`
	Bedtime       string                     `json:"bedtime" example:"23:15"`
	Waketime      string                     `json:"waketime" example:"07:00"`
	SleepDuration int                        `json:"sleep_duration" example:"465"`
	SleepDebt     int                        `json:"sleep_debt" example:"15"`
	Caffeine      []CaffeineIntake           `json:"caffeine"`
	Alcohol       []AlcoholDrink             `json:"alcohol"`
	Meals         []Meal                     `json:"meals"`
	Exercise      []ExerciseSession          `json:"exercise"`
	Screens       []ScreenSession            `json:"screens"`
	Environment   Environment                `json:"environment"`
	Violations    []string                   `json:"violations"`
	QualityScore  int                        `json:"quality_score" example:"82"`
	Breakdown     map[string]FactorBreakdown `json:"breakdown"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

func (e *SleepEntry) ToResponse() SleepEntryResponse {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Message
	}

	return SleepEntryResponse{
		ID:            e.ID,
		Date:          e.Date,
		Bedtime:       e.Bedtime,
		Waketime:      e.Waketime,
		SleepDuration: e.SleepDuration,
		SleepDebt:     e.SleepDebt,
		Caffeine:      e.Caffeine,
		Alcohol:       e.Alcohol,
		Meals:         e.Meals,
		Exercise:      e.Exercise,
		Screens:       e.Screens,
		Environment:   e.Environment,
		Violations:    messages,
		QualityScore:  e.QualityScore,
		Breakdown:     e.Breakdown,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// EntryListResponse is the response body for listing entries.
// @Description Paginated list of daily entries, newest first.
type EntryListResponse struct {
	Data       []SleepEntryResponse `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// EntryFilter contains filter parameters for listing entries
type EntryFilter struct {
	From   string // inclusive date lower bound (YYYY-MM-DD)
	To     string // inclusive date upper bound
	Limit  int
	Cursor string
}
