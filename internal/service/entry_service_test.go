package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

// Mocks are defined in mocks_test.go

func TestEntryService_Save(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewEntryService(repo)

	req := &domain.SaveEntryRequest{
		Date:     "2024-03-11",
		Bedtime:  "23:30",
		Waketime: "05:30",
		Caffeine: []domain.CaffeineIntake{{Time: "21:30", Mg: 200}},
	}

	entry, replaced, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if replaced {
		t.Error("Save() replaced = true on first save")
	}

	// Derived fields must be computed, not taken from the request
	if entry.SleepDuration != 360 {
		t.Errorf("SleepDuration = %d, want 360", entry.SleepDuration)
	}
	if entry.SleepDebt != 120 {
		t.Errorf("SleepDebt = %d, want 120", entry.SleepDebt)
	}
	if len(entry.Violations) == 0 {
		t.Error("expected violations for a short caffeinated night")
	}
	if entry.QualityScore < 0 || entry.QualityScore > 100 {
		t.Errorf("QualityScore = %d, out of range", entry.QualityScore)
	}

	// Optional lists normalize to empty, never nil
	if entry.Alcohol == nil || entry.Meals == nil || entry.Exercise == nil || entry.Screens == nil {
		t.Error("optional lists must be empty slices")
	}

	// Absent environment falls back to the assumed default
	if entry.Environment != domain.DefaultEnvironment() {
		t.Errorf("Environment = %+v, want default", entry.Environment)
	}
}

func TestEntryService_Save_ReplacesSameDate(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewEntryService(repo)
	ctx := context.Background()

	first, _, err := svc.Save(ctx, &domain.SaveEntryRequest{
		Date: "2024-03-11", Bedtime: "23:00", Waketime: "07:00",
	})
	if err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	second, replaced, err := svc.Save(ctx, &domain.SaveEntryRequest{
		Date: "2024-03-11", Bedtime: "22:30", Waketime: "06:30",
		Alcohol: []domain.AlcoholDrink{{Time: "20:00", Units: 1}},
	})
	if err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if !replaced {
		t.Error("Save() replaced = false on second save of the same date")
	}
	if second.ID != first.ID {
		t.Errorf("replace changed ID: %s -> %s", first.ID, second.ID)
	}
	if second.Bedtime != "22:30" {
		t.Errorf("Bedtime = %q, want replaced value", second.Bedtime)
	}

	// The store holds exactly one entry for the date, fully replaced
	stored, err := svc.GetByDate(ctx, "2024-03-11")
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if len(stored.Alcohol) != 1 {
		t.Errorf("stored Alcohol = %v, want the replacement's list", stored.Alcohol)
	}
}

func TestEntryService_Save_CustomEnvironment(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewEntryService(repo)

	env := domain.Environment{TemperatureF: 64, LightLux: 5, NoiseDB: 25, BedroomOnly: false}
	entry, _, err := svc.Save(context.Background(), &domain.SaveEntryRequest{
		Date: "2024-03-12", Bedtime: "22:30", Waketime: "06:30",
		Environment: &env,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if entry.Environment != env {
		t.Errorf("Environment = %+v, want %+v", entry.Environment, env)
	}
}

func TestEntryService_Save_RepoError(t *testing.T) {
	repo := NewMockEntryRepository()
	repo.SetError(errors.New("db down"))
	svc := NewEntryService(repo)

	_, _, err := svc.Save(context.Background(), &domain.SaveEntryRequest{
		Date: "2024-03-11", Bedtime: "23:00", Waketime: "07:00",
	})
	if err == nil {
		t.Fatal("Save() error = nil, want repo error")
	}
}

func TestEntryService_GetByDate_NotFound(t *testing.T) {
	svc := NewEntryService(NewMockEntryRepository())

	_, err := svc.GetByDate(context.Background(), "2024-03-11")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByDate() error = %v, want ErrNotFound", err)
	}
}

func TestEntryService_List_DefaultsAndCursor(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewEntryService(repo)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		_, _, err := svc.Save(ctx, &domain.SaveEntryRequest{
			Date:     fmt.Sprintf("2024-03-%02d", i),
			Bedtime:  "23:00",
			Waketime: "07:00",
		})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	resp, err := svc.List(ctx, domain.EntryFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 20 {
		t.Fatalf("expected default 20 results, got %d", len(resp.Data))
	}
	if !resp.Pagination.HasMore {
		t.Error("expected HasMore = true")
	}
	if resp.Pagination.NextCursor == "" {
		t.Fatal("expected a next cursor")
	}
	// Newest first
	if resp.Data[0].Date != "2024-03-25" {
		t.Errorf("Data[0].Date = %q, want 2024-03-25", resp.Data[0].Date)
	}

	// Second page picks up where the cursor left off
	resp2, err := svc.List(ctx, domain.EntryFilter{Cursor: resp.Pagination.NextCursor})
	if err != nil {
		t.Fatalf("List() page 2 error = %v", err)
	}
	if len(resp2.Data) != 5 {
		t.Fatalf("expected 5 results on page 2, got %d", len(resp2.Data))
	}
	if resp2.Pagination.HasMore {
		t.Error("expected HasMore = false on the last page")
	}
	if resp2.Data[0].Date != "2024-03-05" {
		t.Errorf("page 2 Data[0].Date = %q, want 2024-03-05", resp2.Data[0].Date)
	}
}

func TestEntryService_List_DateRange(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewEntryService(repo)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		svc.Save(ctx, &domain.SaveEntryRequest{
			Date: fmt.Sprintf("2024-03-%02d", i), Bedtime: "23:00", Waketime: "07:00",
		})
	}

	resp, err := svc.List(ctx, domain.EntryFilter{From: "2024-03-04", To: "2024-03-06"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 results in range, got %d", len(resp.Data))
	}
	if resp.Data[0].Date != "2024-03-06" || resp.Data[2].Date != "2024-03-04" {
		t.Errorf("range = %s..%s, want 2024-03-06..2024-03-04", resp.Data[0].Date, resp.Data[2].Date)
	}
}

func TestEntryService_Reset(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewEntryService(repo)
	ctx := context.Background()

	svc.Save(ctx, &domain.SaveEntryRequest{Date: "2024-03-11", Bedtime: "23:00", Waketime: "07:00"})

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("store holds %d entries after reset, want 0", len(all))
	}
}
