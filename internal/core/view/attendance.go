// Package view derives display facts from attendance and membership
// snapshots. Everything here is a pure function of its inputs: no I/O, no
// clocks, no caching. Callers pass "now" explicitly and re-call whenever
// they need fresh values (e.g. a once-per-second tick for a live duration).
package view

import (
	"time"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/pkg/clock"
)

// TodaySummary aggregates one day's attendance logs. Every log is either
// open or closed, so TotalCheckIns == OpenCount + TotalCheckOuts always.
type TodaySummary struct {
	OpenCount      int `json:"openCount"`
	TotalCheckIns  int `json:"totalCheckIns"`
	TotalCheckOuts int `json:"totalCheckOuts"`
}

// FindOpenSession returns the first log without a check-out time, or nil
// when every log is closed. The server keeps at most one session open per
// member; if that invariant is ever violated the first match wins and no
// error is raised; data-integrity reporting is not this layer's job.
func FindOpenSession(logs []*domain.AttendanceLog) *domain.AttendanceLog {
	for _, l := range logs {
		if l != nil && l.Open() {
			return l
		}
	}
	return nil
}

// LiveDuration formats the elapsed time of an open session as of now:
// "{H}h {M}m" once at least an hour has passed, "{M}m" below that.
// A nil session or zero check-in time yields the "-" sentinel.
func LiveDuration(open *domain.AttendanceLog, now time.Time) string {
	if open == nil {
		return clock.Sentinel
	}
	return clock.DurationSince(open.CheckInTime, now)
}

// SummarizeToday counts check-ins, check-outs, and still-open sessions.
func SummarizeToday(logs []*domain.AttendanceLog) TodaySummary {
	s := TodaySummary{TotalCheckIns: len(logs)}
	for _, l := range logs {
		if l != nil && l.Open() {
			s.OpenCount++
		} else {
			s.TotalCheckOuts++
		}
	}
	return s
}
