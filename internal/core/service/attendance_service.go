package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
	"github.com/SYD090303/GymFlow/internal/core/view"
	"github.com/SYD090303/GymFlow/pkg/clock"
)

// CheckInGuard absorbs rapid duplicate check-in submissions (double taps,
// client retries) before the open-session check runs. Backed by Redis.
type CheckInGuard interface {
	IsDuplicate(ctx context.Context, memberID string) (bool, error)
	Mark(ctx context.Context, memberID string) error
}

// OwnerNotifier is the narrow slice of the notification service the
// check-in path needs. The async dispatcher satisfies it too.
type OwnerNotifier interface {
	NotifyOwner(ctx context.Context, title, message string) error
}

// AttendanceService implements check-in/check-out and attendance queries.
// It is the enforcement point for the one-open-session-per-member
// invariant: a check-in is rejected while an open log exists.
type AttendanceService struct {
	logs     ports.AttendanceRepository
	members  ports.MemberRepository
	notifier OwnerNotifier
	guard    CheckInGuard
	log      zerolog.Logger
}

func NewAttendanceService(
	logs ports.AttendanceRepository,
	members ports.MemberRepository,
	notifier OwnerNotifier,
	guard CheckInGuard,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		logs:     logs,
		members:  members,
		notifier: notifier,
		guard:    guard,
		log:      log,
	}
}

// LogVisit is the receptionist-logged variant of check-in: defaults only,
// attributed to the recorder.
func (s *AttendanceService) LogVisit(ctx context.Context, memberID string, recordedBy domain.RecordedBy) (*domain.AttendanceLog, error) {
	return s.CheckIn(ctx, ports.CheckInInput{MemberID: memberID, RecordedBy: recordedBy})
}

func (s *AttendanceService) CheckIn(ctx context.Context, input ports.CheckInInput) (*domain.AttendanceLog, error) {
	member, err := s.activeMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	// Double-submit guard. A guard failure is logged and ignored: the
	// open-session check below still prevents a second session.
	if isDup, err := s.guard.IsDuplicate(ctx, member.ID); err != nil {
		s.log.Warn().Err(err).Str("member_id", member.ID).Msg("check-in guard unavailable, continuing")
	} else if isDup {
		return nil, domain.ErrDuplicateCheckIn
	}

	existing, err := s.logs.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("check-in: %w", err)
	}
	if open := view.FindOpenSession(existing); open != nil {
		return nil, fmt.Errorf("%w since %s", domain.ErrAlreadyCheckedIn, clock.FormatDateTime(open.CheckInTime))
	}

	now := time.Now().UTC()
	at := now
	if input.At != nil {
		at = input.At.UTC()
	}
	status := input.Status
	if status == "" {
		status = domain.AttendancePresent
	}

	entry := &domain.AttendanceLog{
		ID:               uuid.NewString(),
		MemberID:         member.ID,
		CheckInTime:      at,
		AttendanceStatus: status,
		RecordedBy:       input.RecordedBy,
		CreatedAt:        now,
	}
	if entry.RecordedBy == "" {
		entry.RecordedBy = domain.RecordedBySystem
	}

	if err := s.logs.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("check-in: %w", err)
	}

	if err := s.guard.Mark(ctx, member.ID); err != nil {
		s.log.Warn().Err(err).Str("member_id", member.ID).Msg("failed to mark check-in guard")
	}

	// Owner awareness feed; non-fatal on failure.
	msg := fmt.Sprintf("%s checked in at %s (by %s)", member.FullName(), clock.FormatDateTime(entry.CheckInTime), entry.RecordedBy)
	if err := s.notifier.NotifyOwner(ctx, "New check-in", msg); err != nil {
		s.log.Warn().Err(err).Str("member_id", member.ID).Msg("failed to create check-in notification")
	}

	s.log.Info().
		Str("member_id", member.ID).
		Str("recorded_by", string(entry.RecordedBy)).
		Time("check_in_time", entry.CheckInTime).
		Msg("member checked in")

	return entry, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, input ports.CheckOutInput) (*domain.AttendanceLog, error) {
	member, err := s.activeMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("check-out: %w", err)
	}
	open := latestOpen(logs)
	if open == nil {
		return nil, domain.ErrNoOpenSession
	}

	at := time.Now().UTC()
	if input.At != nil {
		at = input.At.UTC()
	}
	if at.Before(open.CheckInTime) {
		return nil, domain.ErrCheckOutBeforeCheckIn
	}

	open.Close(at)
	if err := s.logs.Update(ctx, open); err != nil {
		return nil, fmt.Errorf("check-out: %w", err)
	}

	s.log.Info().
		Str("member_id", member.ID).
		Int("duration_minutes", *open.DurationMinutes).
		Msg("member checked out")

	return open, nil
}

func (s *AttendanceService) ListByMember(ctx context.Context, memberID string) ([]*domain.AttendanceLog, error) {
	member, err := s.activeMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.logs.ListByMember(ctx, member.ID)
}

func (s *AttendanceService) ListByStatus(ctx context.Context, status domain.AttendanceStatus) ([]*domain.AttendanceLog, error) {
	return s.logs.ListByStatus(ctx, status)
}

func (s *AttendanceService) ListRange(ctx context.Context, start, end time.Time) ([]*domain.AttendanceLog, error) {
	return s.logs.ListBetween(ctx, start, end)
}

func (s *AttendanceService) ListToday(ctx context.Context) ([]*domain.AttendanceLog, error) {
	start, end := todayWindow(time.Now().UTC())
	return s.logs.ListBetween(ctx, start, end)
}

func (s *AttendanceService) OpenSession(ctx context.Context, memberID string) (*domain.AttendanceLog, error) {
	logs, err := s.logs.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return view.FindOpenSession(logs), nil
}

func (s *AttendanceService) TodaySummary(ctx context.Context) (view.TodaySummary, error) {
	logs, err := s.ListToday(ctx)
	if err != nil {
		return view.TodaySummary{}, err
	}
	return view.SummarizeToday(logs), nil
}

func (s *AttendanceService) activeMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.StatusActive {
		return nil, domain.ErrMemberInactive
	}
	return member, nil
}

// latestOpen returns the open log with the greatest check-in time. With
// the invariant intact there is at most one; when it is violated the most
// recent session is the one a check-out should close.
func latestOpen(logs []*domain.AttendanceLog) *domain.AttendanceLog {
	var latest *domain.AttendanceLog
	for _, l := range logs {
		if l == nil || !l.Open() {
			continue
		}
		if latest == nil || l.CheckInTime.After(latest.CheckInTime) {
			latest = l
		}
	}
	return latest
}

// todayWindow returns [start of day, start of next day) for t's calendar day.
func todayWindow(t time.Time) (time.Time, time.Time) {
	start := clock.StartOfDay(t)
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
