package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/llm"
	"github.com/blaisecz/sleep-coach/pkg/pagination"
	"github.com/google/uuid"
)

// MockEntryRepository is an in-memory implementation of EntryRepository keyed
// by date, mirroring the unique index of the real store.
type MockEntryRepository struct {
	entries map[string]*domain.SleepEntry
	err     error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.SleepEntry),
	}
}

func (m *MockEntryRepository) SetError(err error) {
	m.err = err
}

func (m *MockEntryRepository) sortedAsc() []domain.SleepEntry {
	result := make([]domain.SleepEntry, 0, len(m.entries))
	for _, e := range m.entries {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

func (m *MockEntryRepository) ListAll(ctx context.Context) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sortedAsc(), nil
}

func (m *MockEntryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}

	asc := m.sortedAsc()
	desc := make([]domain.SleepEntry, 0, len(asc))
	for i := len(asc) - 1; i >= 0; i-- {
		e := asc[i]
		if filter.From != "" && e.Date < filter.From {
			continue
		}
		if filter.To != "" && e.Date > filter.To {
			continue
		}
		desc = append(desc, e)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			filtered := desc[:0]
			for _, e := range desc {
				if e.Date < cursor.Date {
					filtered = append(filtered, e)
				}
			}
			desc = filtered
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(desc) > limit+1 {
		desc = desc[:limit+1]
	}
	return desc, nil
}

func (m *MockEntryRepository) FindByDate(ctx context.Context, date string) (*domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (m *MockEntryRepository) Upsert(ctx context.Context, entry *domain.SleepEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.UpdatedAt = time.Now()
	copied := *entry
	m.entries[entry.Date] = &copied
	return nil
}

func (m *MockEntryRepository) LastN(ctx context.Context, n int) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	asc := m.sortedAsc()
	if len(asc) > n {
		asc = asc[len(asc)-n:]
	}
	return asc, nil
}

func (m *MockEntryRepository) Reset(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.entries = make(map[string]*domain.SleepEntry)
	return nil
}

// MockCoachLLM is a canned implementation of llm.CoachLLM.
type MockCoachLLM struct {
	advice     *domain.CoachAdvice
	err        error
	lastReport *domain.WeeklyReport
}

var _ llm.CoachLLM = (*MockCoachLLM)(nil)

func (m *MockCoachLLM) GenerateAdvice(ctx context.Context, report *domain.WeeklyReport) (*domain.CoachAdvice, error) {
	m.lastReport = report
	if m.err != nil {
		return nil, m.err
	}
	return m.advice, nil
}
