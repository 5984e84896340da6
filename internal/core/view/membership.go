package view

import (
	"time"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/pkg/clock"
)

// IsEndingSoon reports whether the membership's end date falls inside the
// forward-looking window: today <= endDate <= today+windowDays, both edges
// inclusive. A member without a membership, or one whose membership already
// ended, is never "ending soon".
func IsEndingSoon(m *domain.Member, windowDays int, today time.Time) bool {
	if m == nil || m.Membership == nil || m.Membership.EndDate.IsZero() {
		return false
	}
	day := clock.StartOfDay(today)
	end := clock.StartOfDay(m.Membership.EndDate)
	if end.Before(day) {
		return false
	}
	return !end.After(day.AddDate(0, 0, windowDays))
}
