package service

import (
	"context"
	"encoding/json"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/engine"
	"github.com/blaisecz/sleep-coach/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnalyticsService aggregates stored entries into week-scale reports.
type AnalyticsService interface {
	// Weekly builds the report over the most recent (at most 7) entries.
	Weekly(ctx context.Context) (*domain.WeeklyReport, error)
}

type analyticsService struct {
	repo repository.EntryRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo repository.EntryRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Weekly(ctx context.Context) (*domain.WeeklyReport, error) {
	tracer := otel.Tracer("sleep-coach-api/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.Weekly",
		trace.WithAttributes(
			attribute.Int("window.entries", engine.WeeklyWindow),
		),
	)
	defer span.End()

	entries, err := s.repo.LastN(ctx, engine.WeeklyWindow)
	if err != nil {
		return nil, err
	}

	// Attach input payload for Langfuse
	inputPayload := map[string]any{"entries": len(entries)}
	if len(entries) > 0 {
		inputPayload["from"] = entries[0].Date
		inputPayload["to"] = entries[len(entries)-1].Date
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	report := engine.BuildWeeklyReport(entries)

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &report, nil
}
