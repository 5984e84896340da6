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
)

// MemberService implements member enrolment, lifecycle, and the
// membership-window queries behind the "ending soon" feed.
type MemberService struct {
	members ports.MemberRepository
	plans   ports.PlanRepository
	log     zerolog.Logger
}

func NewMemberService(members ports.MemberRepository, plans ports.PlanRepository, log zerolog.Logger) *MemberService {
	return &MemberService{members: members, plans: plans, log: log}
}

func (s *MemberService) Create(ctx context.Context, input ports.CreateMemberInput) (*domain.Member, error) {
	email := normalizeEmail(input.Email)
	if existing, err := s.members.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrMemberExists
	}

	plan, err := s.plans.FindByID(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.Status != domain.StatusActive {
		return nil, domain.ErrPlanInactive
	}

	now := time.Now().UTC()
	start := input.StartDate
	if start.IsZero() {
		start = now
	}

	membership := &domain.Membership{
		PlanID:    plan.ID,
		StartDate: start,
		EndDate:   plan.EndDateFrom(start),
		AutoRenew: input.AutoRenew,
	}
	membership.Status = membership.DerivedStatus(now)

	member := &domain.Member{
		ID:         uuid.NewString(),
		Email:      email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		Status:     domain.StatusActive,
		Membership: membership,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.log.Info().Str("member_id", member.ID).Str("plan_id", plan.ID).Msg("member enrolled")
	return member, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.members.FindByID(ctx, id)
}

func (s *MemberService) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return s.members.FindByEmail(ctx, normalizeEmail(email))
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.members.List(ctx)
}

func (s *MemberService) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Member, error) {
	return s.members.ListByStatus(ctx, status)
}

// ListByMembershipStatus filters on the derived status so a membership that
// lapsed since its last write is still reported EXPIRED.
func (s *MemberService) ListByMembershipStatus(ctx context.Context, status domain.MembershipStatus) ([]*domain.Member, error) {
	all, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC()
	out := make([]*domain.Member, 0, len(all))
	for _, m := range all {
		if m.Membership != nil && m.Membership.DerivedStatus(today) == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemberService) Update(ctx context.Context, id string, input ports.UpdateMemberInput) (*domain.Member, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.AutoRenew != nil && member.Membership != nil {
		member.Membership.AutoRenew = *input.AutoRenew
	}
	if input.PlanID != nil && member.Membership != nil && *input.PlanID != member.Membership.PlanID {
		plan, err := s.plans.FindByID(ctx, *input.PlanID)
		if err != nil {
			return nil, err
		}
		if plan.Status != domain.StatusActive {
			return nil, domain.ErrPlanInactive
		}
		member.Membership.PlanID = plan.ID
		member.Membership.EndDate = plan.EndDateFrom(member.Membership.StartDate)
	}
	member.UpdatedAt = time.Now().UTC()
	if member.Membership != nil {
		member.Membership.Status = member.Membership.DerivedStatus(member.UpdatedAt)
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	if _, err := s.members.FindByID(ctx, id); err != nil {
		return err
	}
	return s.members.Delete(ctx, id)
}

func (s *MemberService) Activate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusActive)
}

func (s *MemberService) Deactivate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusInactive)
}

func (s *MemberService) setStatus(ctx context.Context, id string, status domain.Status) error {
	if _, err := s.members.FindByID(ctx, id); err != nil {
		return err
	}
	return s.members.SetStatus(ctx, id, status)
}

// Renew restarts the membership on its current plan from newStartDate.
func (s *MemberService) Renew(ctx context.Context, id string, newStartDate time.Time) (*domain.Member, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Membership == nil {
		return nil, domain.ErrPlanNotFound
	}

	plan, err := s.plans.FindByID(ctx, member.Membership.PlanID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if newStartDate.IsZero() {
		newStartDate = now
	}
	member.Membership.StartDate = newStartDate
	member.Membership.EndDate = plan.EndDateFrom(newStartDate)
	member.Membership.RenewalDate = &now
	// A renewal reinstates a cancelled membership before recomputing.
	member.Membership.Status = domain.MembershipActive
	member.Membership.Status = member.Membership.DerivedStatus(now)
	member.UpdatedAt = now

	if err := s.members.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("renew membership: %w", err)
	}

	s.log.Info().Str("member_id", member.ID).Time("new_start", newStartDate).Msg("membership renewed")
	return member, nil
}

func (s *MemberService) EndingBefore(ctx context.Context, date time.Time) ([]*domain.Member, error) {
	all, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Member, 0, len(all))
	for _, m := range all {
		if m.Membership != nil && !m.Membership.EndDate.IsZero() && m.Membership.EndDate.Before(date) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemberService) EndingBetween(ctx context.Context, start, end time.Time) ([]*domain.Member, error) {
	return s.members.ListEndingBetween(ctx, start, end)
}

func (s *MemberService) EndingSoon(ctx context.Context, windowDays int) ([]*domain.Member, error) {
	today := time.Now().UTC()
	candidates, err := s.members.ListEndingBetween(ctx, today.AddDate(0, 0, -1), today.AddDate(0, 0, windowDays+1))
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Member, 0, len(candidates))
	for _, m := range candidates {
		if view.IsEndingSoon(m, windowDays, today) {
			out = append(out, m)
		}
	}
	return out, nil
}
