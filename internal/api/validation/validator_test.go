package validation

import (
	"testing"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

func validRequest() domain.SaveEntryRequest {
	return domain.SaveEntryRequest{
		Date:     "2024-03-11",
		Bedtime:  "23:15",
		Waketime: "07:00",
	}
}

func TestValidate_SaveEntryRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.SaveEntryRequest)
		wantField string
	}{
		{
			name:   "valid minimal request",
			mutate: func(r *domain.SaveEntryRequest) {},
		},
		{
			name:      "missing date",
			mutate:    func(r *domain.SaveEntryRequest) { r.Date = "" },
			wantField: "date",
		},
		{
			name:      "date not ISO",
			mutate:    func(r *domain.SaveEntryRequest) { r.Date = "11.03.2024" },
			wantField: "date",
		},
		{
			name:      "bedtime not a clock value",
			mutate:    func(r *domain.SaveEntryRequest) { r.Bedtime = "24:00" },
			wantField: "bedtime",
		},
		{
			name:      "waketime with seconds",
			mutate:    func(r *domain.SaveEntryRequest) { r.Waketime = "07:00:00" },
			wantField: "waketime",
		},
		{
			name: "nested caffeine time invalid",
			mutate: func(r *domain.SaveEntryRequest) {
				r.Caffeine = []domain.CaffeineIntake{{Time: "later", Mg: 95}}
			},
			wantField: "time",
		},
		{
			name: "negative caffeine amount",
			mutate: func(r *domain.SaveEntryRequest) {
				r.Caffeine = []domain.CaffeineIntake{{Time: "08:00", Mg: -1}}
			},
			wantField: "mg",
		},
		{
			name: "unknown meal size",
			mutate: func(r *domain.SaveEntryRequest) {
				r.Meals = []domain.Meal{{Time: "19:00", Size: "enormous", MacroProfile: domain.MacroBalanced}}
			},
			wantField: "size",
		},
		{
			name: "unknown screen content type",
			mutate: func(r *domain.SaveEntryRequest) {
				r.Screens = []domain.ScreenSession{{StartTime: "21:00", EndTime: "22:00", ContentType: "doomscrolling"}}
			},
			wantField: "content_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			fieldErrors := Validate(req)

			if tt.wantField == "" {
				if fieldErrors != nil {
					t.Fatalf("Validate() = %+v, want nil", fieldErrors)
				}
				return
			}

			if len(fieldErrors) == 0 {
				t.Fatal("Validate() = nil, want field errors")
			}
			found := false
			for _, fe := range fieldErrors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q: %+v", tt.wantField, fieldErrors)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bedtime", "bedtime"},
		{"MacroProfile", "macro_profile"},
		{"ContentType", "content_type"},
		{"Mg", "mg"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
