package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blaisecz/sleep-coach/internal/export"
	"github.com/blaisecz/sleep-coach/internal/service"
	"github.com/blaisecz/sleep-coach/pkg/problem"
)

// AnalyticsHandler handles weekly analytics and export endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	entryService     service.EntryService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, entryService service.EntryService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		entryService:     entryService,
	}
}

// Weekly handles GET /v1/analytics/weekly
// @Summary Weekly sleep analytics
// @Description Aggregate the most recent 7 entries: debt trend, social jetlag, bedtime consistency, violation frequency, and recommended adjustments.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.WeeklyReport "Weekly report"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/weekly [get]
func (h *AnalyticsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.Weekly(r.Context())
	if err != nil {
		problem.InternalError("Failed to build weekly report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// Export handles GET /v1/export
// @Summary Export the full store
// @Description Download every stored entry as a JSON document (format=json, default) or a formatted text report (format=text).
// @Tags analytics
// @Produce json
// @Produce plain
// @Param format query string false "Export format" Enums(json, text) default(json)
// @Success 200 "Exported snapshot"
// @Failure 400 {object} problem.Problem "Unknown format"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /export [get]
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		problem.BadRequest("format must be json or text").Write(w)
		return
	}

	entries, err := h.entryService.ListAll(r.Context())
	if err != nil {
		problem.InternalError("Failed to load entries").Write(w)
		return
	}

	now := time.Now()
	if format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(export.TextReport(entries, now)))
		return
	}

	doc, err := export.Snapshot(entries, now)
	if err != nil {
		problem.InternalError("Failed to serialize snapshot").Write(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(doc)
}
