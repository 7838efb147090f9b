package domain

// CoachAdvice is the strict-JSON output of the coaching LLM.
// @Description LLM-generated, non-medical coaching advice.
type CoachAdvice struct {
	// 2-3 sentence summary of the week
	Summary string `json:"summary"`
	// Bullet observations about patterns in the aggregates
	Observations []string `json:"observations"`
	// Concrete behavioral suggestions
	Guidance []string `json:"guidance"`
}

// AdviceResponse is the response body for the advice endpoint.
// @Description Weekly report plus LLM coaching advice.
type AdviceResponse struct {
	Report WeeklyReport `json:"report"`
	Advice CoachAdvice  `json:"advice"`
	// OTEL trace ID for feedback linking (when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
