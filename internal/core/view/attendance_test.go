package view

import (
	"testing"
	"time"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/pkg/clock"
)

func logAt(t time.Time) *domain.AttendanceLog {
	return &domain.AttendanceLog{CheckInTime: t}
}

func closedLog(in, out time.Time) *domain.AttendanceLog {
	l := logAt(in)
	l.Close(out)
	return l
}

func TestFindOpenSession_FirstOpenWins(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	first := logAt(base)
	second := logAt(base.Add(2 * time.Hour))
	logs := []*domain.AttendanceLog{
		closedLog(base.Add(-24*time.Hour), base.Add(-23*time.Hour)),
		first,
		second,
	}

	if got := FindOpenSession(logs); got != first {
		t.Fatalf("expected first open log, got %+v", got)
	}
}

func TestFindOpenSession_AllClosed(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := []*domain.AttendanceLog{
		closedLog(base, base.Add(time.Hour)),
		closedLog(base.Add(2*time.Hour), base.Add(3*time.Hour)),
	}

	if got := FindOpenSession(logs); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestFindOpenSession_EmptyAndNilEntries(t *testing.T) {
	if FindOpenSession(nil) != nil {
		t.Fatalf("nil slice should yield nil")
	}
	if FindOpenSession([]*domain.AttendanceLog{nil, nil}) != nil {
		t.Fatalf("nil entries should yield nil")
	}
}

func TestLiveDuration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		open *domain.AttendanceLog
		want string
	}{
		{"nil session", nil, clock.Sentinel},
		{"zero check-in", &domain.AttendanceLog{}, clock.Sentinel},
		{"45 minutes", logAt(now.Add(-45 * time.Minute)), "45m"},
		{"exactly an hour", logAt(now.Add(-60 * time.Minute)), "1h 0m"},
		{"125 minutes", logAt(now.Add(-125 * time.Minute)), "2h 5m"},
		{"sub-minute truncated", logAt(now.Add(-90 * time.Second)), "1m"},
		{"future check-in", logAt(now.Add(time.Hour)), clock.Sentinel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LiveDuration(tc.open, now); got != tc.want {
				t.Fatalf("LiveDuration = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummarizeToday_Empty(t *testing.T) {
	got := SummarizeToday(nil)
	if got != (TodaySummary{}) {
		t.Fatalf("empty input should yield zero summary, got %+v", got)
	}
}

func TestSummarizeToday_Counts(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	logs := []*domain.AttendanceLog{
		closedLog(base, base.Add(time.Hour)),
		logAt(base.Add(2 * time.Hour)),
		closedLog(base.Add(3*time.Hour), base.Add(4*time.Hour)),
		logAt(base.Add(5 * time.Hour)),
		logAt(base.Add(6 * time.Hour)),
	}

	got := SummarizeToday(logs)
	if got.TotalCheckIns != 5 || got.OpenCount != 3 || got.TotalCheckOuts != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.TotalCheckIns != got.OpenCount+got.TotalCheckOuts {
		t.Fatalf("check-ins must equal open plus check-outs: %+v", got)
	}
}

// A member's full day: one closed morning visit, then an open afternoon
// session whose live duration grows with the clock.
func TestAttendanceDayScenario(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	morning := closedLog(day.Add(9*time.Hour), day.Add(9*time.Hour+45*time.Minute))
	afternoon := logAt(day.Add(14 * time.Hour))
	logs := []*domain.AttendanceLog{morning, afternoon}

	open := FindOpenSession(logs)
	if open != afternoon {
		t.Fatalf("expected the afternoon session to be open")
	}

	if got := LiveDuration(open, day.Add(14*time.Hour+30*time.Minute)); got != "30m" {
		t.Fatalf("after 30 minutes: got %q", got)
	}
	if got := LiveDuration(open, day.Add(16*time.Hour+5*time.Minute)); got != "2h 5m" {
		t.Fatalf("after 2h05m: got %q", got)
	}

	if morning.DurationMinutes == nil || *morning.DurationMinutes != 45 {
		t.Fatalf("morning session should have frozen at 45 minutes")
	}

	summary := SummarizeToday(logs)
	if summary.OpenCount != 1 || summary.TotalCheckIns != 2 || summary.TotalCheckOuts != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
