package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/sleep-coach/internal/api/validation"
	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/service"
	"github.com/blaisecz/sleep-coach/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Save handles POST /v1/entries
// @Summary Save a daily log
// @Description Save the day's raw log. Derived fields (duration, debt, violations, score, breakdown) are recomputed server-side. Saving an existing date replaces the whole entry: returns 200 on replace, 201 on create.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body domain.SaveEntryRequest true "Raw daily log"
// @Success 201 {object} domain.SleepEntryResponse "New entry created"
// @Success 200 {object} domain.SleepEntryResponse "Existing entry replaced"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [post]
func (h *EntryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, replaced, err := h.service.Save(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to save entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if replaced {
		w.WriteHeader(http.StatusOK) // Same date saved again: wholesale replace
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// GetByDate handles GET /v1/entries/{date}
// @Summary Get one daily entry
// @Description Fetch the fully derived entry for a calendar date.
// @Tags entries
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-03-11)
// @Success 200 {object} domain.SleepEntryResponse "Daily entry"
// @Failure 400 {object} problem.Problem "Invalid date format"
// @Failure 404 {object} problem.Problem "No entry for this date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries/{date} [get]
func (h *EntryHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		return
	}

	entry, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No entry for this date").Write(w)
			return
		}
		problem.InternalError("Failed to fetch entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/entries
// @Summary List daily entries
// @Description Fetch paginated daily entries, newest first. Filter by date range.
// @Tags entries
// @Produce json
// @Param from query string false "Start of date range (inclusive)" example(2024-03-01)
// @Param to query string false "End of date range (inclusive)" example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EntryListResponse "Entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [get]
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Reset handles DELETE /v1/entries
// @Summary Reset the store
// @Description Remove every stored entry. Individual entries cannot be deleted; a save for the same date replaces instead.
// @Tags entries
// @Success 204 "Store reset"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [delete]
func (h *EntryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		problem.InternalError("Failed to reset store").Write(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseListFilter(r *http.Request) (domain.EntryFilter, []problem.FieldError) {
	var filter domain.EntryFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if _, err := time.Parse("2006-01-02", fromStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a calendar date (YYYY-MM-DD)",
			})
		} else {
			filter.From = fromStr
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if _, err := time.Parse("2006-01-02", toStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a calendar date (YYYY-MM-DD)",
			})
		} else {
			filter.To = toStr
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
