package ports

import (
	"context"
	"time"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/view"
)

// AttendanceRepository defines persistence for attendance logs. Lists are
// returned in check-in order, oldest first.
type AttendanceRepository interface {
	Insert(ctx context.Context, log *domain.AttendanceLog) error
	Update(ctx context.Context, log *domain.AttendanceLog) error
	ListByMember(ctx context.Context, memberID string) ([]*domain.AttendanceLog, error)
	ListByStatus(ctx context.Context, status domain.AttendanceStatus) ([]*domain.AttendanceLog, error)
	// ListBetween returns logs with check-in time in [start, end], inclusive.
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.AttendanceLog, error)
}

// CheckInInput carries an explicit check-in. At and Status are optional;
// they default to the current time and PRESENT.
type CheckInInput struct {
	MemberID   string
	At         *time.Time
	Status     domain.AttendanceStatus
	RecordedBy domain.RecordedBy
}

// CheckOutInput closes the member's open session. At defaults to now.
type CheckOutInput struct {
	MemberID string
	At       *time.Time
}

// AttendanceService defines attendance use cases. The server enforces the
// at-most-one-open-session invariant at check-in; readers still tolerate
// violations by taking the first open log found.
type AttendanceService interface {
	LogVisit(ctx context.Context, memberID string, recordedBy domain.RecordedBy) (*domain.AttendanceLog, error)
	CheckIn(ctx context.Context, input CheckInInput) (*domain.AttendanceLog, error)
	CheckOut(ctx context.Context, input CheckOutInput) (*domain.AttendanceLog, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.AttendanceLog, error)
	ListByStatus(ctx context.Context, status domain.AttendanceStatus) ([]*domain.AttendanceLog, error)
	ListRange(ctx context.Context, start, end time.Time) ([]*domain.AttendanceLog, error)
	ListToday(ctx context.Context) ([]*domain.AttendanceLog, error)
	// OpenSession returns the member's open log, or nil when none exists.
	OpenSession(ctx context.Context, memberID string) (*domain.AttendanceLog, error)
	TodaySummary(ctx context.Context) (view.TodaySummary, error)
}
