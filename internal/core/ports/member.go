package ports

import (
	"context"
	"time"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Member, error)
	// ListEndingBetween returns members whose membership end date falls in
	// [start, end], both inclusive.
	ListEndingBetween(ctx context.Context, start, end time.Time) ([]*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	SetStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

// CreateMemberInput carries all data needed to enrol a member.
type CreateMemberInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	PlanID    string
	StartDate time.Time
	AutoRenew bool
}

// UpdateMemberInput carries the mutable member fields. Nil means unchanged.
type UpdateMemberInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	PlanID    *string
	AutoRenew *bool
}

// MemberService defines use-case operations for members and their memberships.
type MemberService interface {
	Create(ctx context.Context, input CreateMemberInput) (*domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Member, error)
	ListByMembershipStatus(ctx context.Context, status domain.MembershipStatus) ([]*domain.Member, error)
	Update(ctx context.Context, id string, input UpdateMemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	// Renew restarts the membership on its current plan from newStartDate.
	Renew(ctx context.Context, id string, newStartDate time.Time) (*domain.Member, error)
	EndingBefore(ctx context.Context, date time.Time) ([]*domain.Member, error)
	EndingBetween(ctx context.Context, start, end time.Time) ([]*domain.Member, error)
	// EndingSoon lists members whose membership ends within windowDays of today.
	EndingSoon(ctx context.Context, windowDays int) ([]*domain.Member, error)
}
