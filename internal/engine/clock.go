// Package engine holds the scoring and rule-evaluation core: pure functions
// over a single day's entry (decay, timing, circadian and environment models,
// rule checks, the quality scorer) and week-scale aggregation on top of them.
// Nothing in this package performs I/O; identical inputs always produce
// identical outputs.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 1440

// Minutes parses an HH:MM clock value into a minute offset in [0,1440).
// Clock strings are validated at the API boundary; malformed values map to 0.
func Minutes(clock string) int {
	h, m, ok := splitClock(clock)
	if !ok {
		return 0
	}
	return h*60 + m
}

func splitClock(clock string) (int, int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ForwardSpan returns the minutes from one clock time to another moving
// forward, wrapping past midnight. Equal times yield 0, not 1440.
func ForwardSpan(from, to string) int {
	span := Minutes(to) - Minutes(from)
	if span < 0 {
		span += minutesPerDay
	}
	return span
}

// CircularDeviation returns the shortest distance between two clock times
// around the 24h clock, in [0,720].
func CircularDeviation(a, b string) int {
	d := Minutes(a) - Minutes(b)
	if d < 0 {
		d = -d
	}
	if d > minutesPerDay/2 {
		d = minutesPerDay - d
	}
	return d
}

// HoursBefore returns how many hours before bedtime an event happened,
// always in [0,24).
func HoursBefore(eventTime, bedtime string) float64 {
	return float64(ForwardSpan(eventTime, bedtime)) / 60.0
}

// FormatDuration renders minutes as "XhYm", e.g. 465 -> "7h45m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
