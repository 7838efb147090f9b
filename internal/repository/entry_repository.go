package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository is the date-keyed store contract the engine relies on.
type EntryRepository interface {
	// ListAll returns every entry ordered by date ascending.
	ListAll(ctx context.Context) ([]domain.SleepEntry, error)
	// List returns a filtered page ordered by date descending (newest first).
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.SleepEntry, error)
	// FindByDate returns the entry for a date, or domain.ErrNotFound.
	FindByDate(ctx context.Context, date string) (*domain.SleepEntry, error)
	// Upsert replaces the entry with the same date, else inserts.
	Upsert(ctx context.Context, entry *domain.SleepEntry) error
	// LastN returns the most recent n entries, ordered by date ascending.
	LastN(ctx context.Context, n int) ([]domain.SleepEntry, error)
	// Reset removes every entry. Individual entries are never deleted.
	Reset(ctx context.Context) error
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) ListAll(ctx context.Context) ([]domain.SleepEntry, error) {
	var entries []domain.SleepEntry
	err := r.db.WithContext(ctx).Order("date ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]domain.SleepEntry, error) {
	query := r.db.WithContext(ctx).Order("date DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get entries with date < cursor.Date
			query = query.Where("date < ?", cursor.Date)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.SleepEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindByDate(ctx context.Context, date string) (*domain.SleepEntry, error) {
	var entry domain.SleepEntry
	err := r.db.WithContext(ctx).First(&entry, "date = ?", date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Upsert relies on the unique date index: a second save for the same date
// overwrites the whole row, so stale derived fields can never survive.
func (r *entryRepository) Upsert(ctx context.Context, entry *domain.SleepEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(entry).Error
}

func (r *entryRepository) LastN(ctx context.Context, n int) ([]domain.SleepEntry, error) {
	var entries []domain.SleepEntry
	err := r.db.WithContext(ctx).Order("date DESC").Limit(n).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	// Flip back to ascending date order
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (r *entryRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.SleepEntry{}).Error
}
