// Package export serializes store snapshots for download: a JSON document for
// machine consumers and a formatted text report for humans.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/blaisecz/sleep-coach/internal/domain"
)

// Document is the JSON export envelope.
type Document struct {
	ExportedAt time.Time                   `json:"exported_at"`
	Entries    int                         `json:"entries"`
	Data       []domain.SleepEntryResponse `json:"data"`
}

// Snapshot serializes entries (date ascending) to an indented JSON document.
func Snapshot(entries []domain.SleepEntry, now time.Time) ([]byte, error) {
	doc := Document{
		ExportedAt: now.UTC(),
		Entries:    len(entries),
		Data:       make([]domain.SleepEntryResponse, len(entries)),
	}
	for i := range entries {
		doc.Data[i] = entries[i].ToResponse()
	}
	return json.MarshalIndent(doc, "", "  ")
}

// TextReport renders entries (date ascending) as an aligned plain-text table
// with one line per violation underneath each day.
func TextReport(entries []domain.SleepEntry, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sleep report - %d entries (generated %s)\n\n", len(entries), now.UTC().Format("2006-01-02 15:04 UTC"))

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tBED\tWAKE\tDURATION\tDEBT\tSCORE\tVIOLATIONS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dh%dm\t%dm\t%d\t%d\n",
			e.Date, e.Bedtime, e.Waketime,
			e.SleepDuration/60, e.SleepDuration%60,
			e.SleepDebt, e.QualityScore, len(e.Violations))
	}
	w.Flush()

	for _, e := range entries {
		if len(e.Violations) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s:\n", e.Date)
		for _, v := range e.Violations {
			fmt.Fprintf(&sb, "  - %s\n", v.Message)
		}
	}

	return sb.String()
}
