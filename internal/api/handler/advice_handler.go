package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/sleep-coach/internal/langfuse"
	"github.com/blaisecz/sleep-coach/internal/llm"
	"github.com/blaisecz/sleep-coach/internal/service"
	"github.com/blaisecz/sleep-coach/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// AdviceHandler handles LLM coaching endpoints.
type AdviceHandler struct {
	adviceService  service.AdviceService
	langfuseClient langfuse.Client
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviceService service.AdviceService, langfuseClient langfuse.Client) *AdviceHandler {
	return &AdviceHandler{
		adviceService:  adviceService,
		langfuseClient: langfuseClient,
	}
}

// Get handles GET /v1/advice
// @Summary Get LLM coaching advice
// @Description Generate non-medical coaching advice from the weekly report using an LLM.
// @Tags advice
// @Produce json
// @Success 200 {object} domain.AdviceResponse "Weekly report with coaching advice"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /advice [get]
func (h *AdviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.adviceService.Generate(r.Context())
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate advice from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate advice").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for advice feedback.
// @Description Request body for submitting feedback on coaching advice.
type FeedbackRequest struct {
	// Trace ID from the advice response
	TraceID string `json:"trace_id"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty"`
}

// PostFeedback handles POST /v1/advice/feedback
// @Summary Submit feedback on coaching advice
// @Description Submit a user rating and optional comment for a previous advice response.
// @Tags advice
// @Accept json
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /advice/feedback [post]
func (h *AdviceHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Fire-and-forget; errors are logged inside the client
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
