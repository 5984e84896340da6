// Package clock formats timestamps and durations for display. All
// functions are pure and total: zero or unparsable inputs produce the "-"
// sentinel instead of an error or panic.
package clock

import (
	"fmt"
	"time"
)

// Sentinel is returned for absent or invalid timestamps.
const Sentinel = "-"

// FormatDate renders a timestamp as "2 Jan 2006".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Sentinel
	}
	return t.Format("2 Jan 2006")
}

// FormatTime renders a timestamp as 24-hour "15:04".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return Sentinel
	}
	return t.Format("15:04")
}

// FormatDateTime renders "2 Jan 2006, 15:04".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return Sentinel
	}
	return FormatDate(t) + ", " + FormatTime(t)
}

// DurationSince formats the elapsed time from start to now as "{H}h {M}m"
// when at least an hour has passed, otherwise "{M}m". Sub-minute remainders
// are truncated. A zero start, or a now before start, yields the sentinel.
func DurationSince(start, now time.Time) string {
	if start.IsZero() || now.Before(start) {
		return Sentinel
	}
	totalMins := int(now.Sub(start).Minutes())
	hrs := totalMins / 60
	mins := totalMins % 60
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// flexFormats are the timestamp layouts the API is known to emit.
var flexFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// StartOfDay returns midnight of t's calendar day in t's own location.
// Day-window logic must use this rather than Truncate, which floors to
// absolute 24h boundaries and lands on the wrong day off UTC.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateOnly reports whether s is a bare calendar date with no time component.
// Callers that treat date ranges as inclusive use this to tell "2024-05-02"
// apart from an explicit midnight timestamp on the same day.
func DateOnly(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseFlexible parses a timestamp string in any of the known wire layouts.
// Empty or unparsable input returns the zero time and false.
func ParseFlexible(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range flexFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateString is FormatDate over a wire timestamp string.
func FormatDateString(s string) string {
	t, ok := ParseFlexible(s)
	if !ok {
		return Sentinel
	}
	return FormatDate(t)
}

// FormatTimeString is FormatTime over a wire timestamp string.
func FormatTimeString(s string) string {
	t, ok := ParseFlexible(s)
	if !ok {
		return Sentinel
	}
	return FormatTime(t)
}

// FormatDateTimeString is FormatDateTime over a wire timestamp string.
func FormatDateTimeString(s string) string {
	t, ok := ParseFlexible(s)
	if !ok {
		return Sentinel
	}
	return FormatDateTime(t)
}
