package domain

// ViolationKind identifies a rule that an entry broke. Weekly analytics groups
// violations by kind; the message text is presentation only.
type ViolationKind string

const (
	ViolationSleepDeprivation  ViolationKind = "sleep_deprivation"
	ViolationCaffeineAtBedtime ViolationKind = "caffeine_at_bedtime"
	ViolationHeavyDrinking     ViolationKind = "heavy_drinking"
	ViolationLateExercise      ViolationKind = "late_exercise"
	ViolationLateScreenTime    ViolationKind = "late_screen_time"
	ViolationBedtimeDrift      ViolationKind = "bedtime_drift"
)

// violationLabels are the display prefixes of each kind. The prefix is the
// text before the first colon of the rendered message, so messages stay
// groupable by prefix for any consumer that only sees the strings.
var violationLabels = map[ViolationKind]string{
	ViolationSleepDeprivation:  "Critical sleep deprivation",
	ViolationCaffeineAtBedtime: "Caffeine at bedtime",
	ViolationHeavyDrinking:     "Heavy drinking",
	ViolationLateExercise:      "Late high-intensity exercise",
	ViolationLateScreenTime:    "Screen use before bed",
	ViolationBedtimeDrift:      "Bedtime far off target",
}

// Label returns the human-readable display prefix of the kind.
func (k ViolationKind) Label() string {
	return violationLabels[k]
}

// Violation is a single broken rule on an entry.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// NewViolation renders a violation as "<label>: <detail>".
func NewViolation(kind ViolationKind, detail string) Violation {
	return Violation{
		Kind:    kind,
		Message: kind.Label() + ": " + detail,
	}
}
