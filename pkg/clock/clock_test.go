package clock

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "5 Mar 2025" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != Sentinel {
		t.Fatalf("zero time should yield sentinel, got %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2025, 3, 5, 9, 5, 0, 0, time.UTC)
	if got := FormatTime(ts); got != "09:05" {
		t.Fatalf("FormatTime = %q", got)
	}
	if got := FormatTime(time.Time{}); got != Sentinel {
		t.Fatalf("zero time should yield sentinel, got %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 45, 0, 0, time.UTC)
	if got := FormatDateTime(ts); got != "31 Dec 2025, 23:45" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestDurationSince(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		want  string
	}{
		{"zero start", time.Time{}, Sentinel},
		{"start after now", now.Add(time.Minute), Sentinel},
		{"zero elapsed", now, "0m"},
		{"under an hour", now.Add(-45 * time.Minute), "45m"},
		{"exactly an hour", now.Add(-time.Hour), "1h 0m"},
		{"over an hour", now.Add(-(2*time.Hour + 5*time.Minute)), "2h 5m"},
		{"seconds truncated", now.Add(-(3*time.Minute + 59*time.Second)), "3m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationSince(tc.start, now); got != tc.want {
				t.Fatalf("DurationSince = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseFlexible(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-03-05T14:30:00Z", true},
		{"2025-03-05T14:30:00.123456789Z", true},
		{"2025-03-05T14:30:00", true},
		{"2025-03-05 14:30:00", true},
		{"2025-03-05", true},
		{"", false},
		{"yesterday", false},
		{"05/03/2025", false},
	}

	for _, tc := range cases {
		_, ok := ParseFlexible(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseFlexible(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestDateOnly(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-05-02", true},
		{"2024-05-02T00:00:00Z", false},
		{"2024-05-02 00:00:00", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tc := range cases {
		if got := DateOnly(tc.in); got != tc.want {
			t.Fatalf("DateOnly(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatStringHelpers(t *testing.T) {
	if got := FormatDateString("2025-03-05T14:30:00Z"); got != "5 Mar 2025" {
		t.Fatalf("FormatDateString = %q", got)
	}
	if got := FormatTimeString("2025-03-05T14:30:00Z"); got != "14:30" {
		t.Fatalf("FormatTimeString = %q", got)
	}
	if got := FormatDateTimeString("not a date"); got != Sentinel {
		t.Fatalf("invalid input should yield sentinel, got %q", got)
	}
}
