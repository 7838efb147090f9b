package service

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/engine"
	"github.com/blaisecz/sleep-coach/internal/repository"
	"github.com/blaisecz/sleep-coach/pkg/pagination"
)

type EntryService interface {
	// Save derives every computed field from the draft and upserts the entry.
	// Returns (entry, replaced, error) - replaced is true when an entry for
	// the same date already existed.
	Save(ctx context.Context, req *domain.SaveEntryRequest) (*domain.SleepEntry, bool, error)
	GetByDate(ctx context.Context, date string) (*domain.SleepEntry, error)
	List(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	ListAll(ctx context.Context) ([]domain.SleepEntry, error)
	Reset(ctx context.Context) error
}

type entryService struct {
	repo repository.EntryRepository
}

func NewEntryService(repo repository.EntryRepository) EntryService {
	return &entryService{repo: repo}
}

// Save is the single write path: derived fields are always recomputed in full
// from the raw fields, never merged from a previous save.
func (s *entryService) Save(ctx context.Context, req *domain.SaveEntryRequest) (*domain.SleepEntry, bool, error) {
	entry := &domain.SleepEntry{
		Date:        req.Date,
		Bedtime:     req.Bedtime,
		Waketime:    req.Waketime,
		Caffeine:    orEmpty(req.Caffeine),
		Alcohol:     orEmpty(req.Alcohol),
		Meals:       orEmpty(req.Meals),
		Exercise:    orEmpty(req.Exercise),
		Screens:     orEmpty(req.Screens),
		Environment: domain.DefaultEnvironment(),
	}
	if req.Environment != nil {
		entry.Environment = *req.Environment
	}

	engine.Derive(entry)

	// Reuse the existing row's identity so the save replaces, not duplicates
	replaced := false
	existing, err := s.repo.FindByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}
	if existing != nil {
		replaced = true
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, false, err
	}

	return entry, replaced, nil
}

func (s *entryService) GetByDate(ctx context.Context, date string) (*domain.SleepEntry, error) {
	return s.repo.FindByDate(ctx, date)
}

func (s *entryService) List(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.EntryListResponse{
		Data: make([]domain.SleepEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *entryService) ListAll(ctx context.Context) ([]domain.SleepEntry, error) {
	return s.repo.ListAll(ctx)
}

func (s *entryService) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}

// orEmpty normalizes absent optional lists to empty slices: downstream models
// and serialization never see nil.
func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
