package service

import (
	"context"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/llm"
)

// AdviceService generates LLM coaching advice from the weekly report.
type AdviceService interface {
	Generate(ctx context.Context) (*domain.AdviceResponse, error)
}

type adviceService struct {
	analyticsService AnalyticsService
	llmClient        llm.CoachLLM
}

// NewAdviceService creates a new AdviceService.
func NewAdviceService(analyticsService AnalyticsService, llmClient llm.CoachLLM) AdviceService {
	return &adviceService{
		analyticsService: analyticsService,
		llmClient:        llmClient,
	}
}

func (s *adviceService) Generate(ctx context.Context) (*domain.AdviceResponse, error) {
	report, err := s.analyticsService.Weekly(ctx)
	if err != nil {
		return nil, err
	}

	advice, err := s.llmClient.GenerateAdvice(ctx, report)
	if err != nil {
		return nil, err
	}

	return &domain.AdviceResponse{
		Report: *report,
		Advice: *advice,
	}, nil
}
