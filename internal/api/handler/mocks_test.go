package handler

import (
	"context"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/engine"
	"github.com/blaisecz/sleep-coach/internal/langfuse"
	"github.com/google/uuid"
)

// MockEntryService is a mock implementation of service.EntryService
type MockEntryService struct {
	saveFunc    func(ctx context.Context, req *domain.SaveEntryRequest) (*domain.SleepEntry, bool, error)
	getFunc     func(ctx context.Context, date string) (*domain.SleepEntry, error)
	listFunc    func(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	listAllFunc func(ctx context.Context) ([]domain.SleepEntry, error)
	resetFunc   func(ctx context.Context) error
}

func (m *MockEntryService) Save(ctx context.Context, req *domain.SaveEntryRequest) (*domain.SleepEntry, bool, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	entry := &domain.SleepEntry{
		ID:          uuid.New(),
		Date:        req.Date,
		Bedtime:     req.Bedtime,
		Waketime:    req.Waketime,
		Environment: domain.DefaultEnvironment(),
	}
	engine.Derive(entry)
	return entry, false, nil
}

func (m *MockEntryService) GetByDate(ctx context.Context, date string) (*domain.SleepEntry, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, date)
	}
	return nil, domain.ErrNotFound
}

func (m *MockEntryService) List(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.EntryListResponse{
		Data:       []domain.SleepEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockEntryService) ListAll(ctx context.Context) ([]domain.SleepEntry, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return []domain.SleepEntry{}, nil
}

func (m *MockEntryService) Reset(ctx context.Context) error {
	if m.resetFunc != nil {
		return m.resetFunc(ctx)
	}
	return nil
}

// MockAnalyticsService is a mock implementation of service.AnalyticsService
type MockAnalyticsService struct {
	weeklyFunc func(ctx context.Context) (*domain.WeeklyReport, error)
}

func (m *MockAnalyticsService) Weekly(ctx context.Context) (*domain.WeeklyReport, error) {
	if m.weeklyFunc != nil {
		return m.weeklyFunc(ctx)
	}
	return &domain.WeeklyReport{
		DebtTrend:          domain.DebtTrend{State: "Well rested"},
		Consistency:        domain.Consistency{Score: 100, Rating: "Very consistent"},
		ViolationFrequency: []domain.ViolationCount{},
		Recommendations:    []domain.Recommendation{},
	}, nil
}

// MockAdviceService is a mock implementation of service.AdviceService
type MockAdviceService struct {
	generateFunc func(ctx context.Context) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Generate(ctx context.Context) (*domain.AdviceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.AdviceResponse{
		Advice: domain.CoachAdvice{Summary: "Steady week."},
	}, nil
}

// MockLangfuseClient records scores instead of sending them.
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
