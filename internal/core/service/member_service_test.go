package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// memMemberRepo is an in-memory MemberRepository with real storage semantics.
type memMemberRepo struct {
	byID map[string]*domain.Member
}

func newMemMemberRepo() *memMemberRepo {
	return &memMemberRepo{byID: make(map[string]*domain.Member)}
}

func (r *memMemberRepo) Create(ctx context.Context, m *domain.Member) error {
	copied := *m
	r.byID[m.ID] = &copied
	return nil
}

func (r *memMemberRepo) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	copied := *m
	if m.Membership != nil {
		ms := *m.Membership
		copied.Membership = &ms
	}
	return &copied, nil
}

func (r *memMemberRepo) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	for _, m := range r.byID {
		if m.Email == email {
			return r.FindByID(ctx, m.ID)
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *memMemberRepo) List(ctx context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, 0, len(r.byID))
	for id := range r.byID {
		m, _ := r.FindByID(ctx, id)
		out = append(out, m)
	}
	return out, nil
}

func (r *memMemberRepo) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Member, error) {
	all, _ := r.List(ctx)
	out := all[:0]
	for _, m := range all {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMemberRepo) ListEndingBetween(ctx context.Context, start, end time.Time) ([]*domain.Member, error) {
	all, _ := r.List(ctx)
	out := all[:0]
	for _, m := range all {
		if m.Membership == nil || m.Membership.EndDate.IsZero() {
			continue
		}
		if !m.Membership.EndDate.Before(start) && !m.Membership.EndDate.After(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMemberRepo) Update(ctx context.Context, m *domain.Member) error {
	if _, ok := r.byID[m.ID]; !ok {
		return domain.ErrMemberNotFound
	}
	return r.Create(ctx, m)
}

func (r *memMemberRepo) SetStatus(ctx context.Context, id string, status domain.Status) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMemberNotFound
	}
	m.Status = status
	return nil
}

func (r *memMemberRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrMemberNotFound
	}
	delete(r.byID, id)
	return nil
}

// stubPlanRepo serves a fixed plan catalog.
type stubPlanRepo struct {
	plans map[string]*domain.MembershipPlan
}

func (r *stubPlanRepo) Create(ctx context.Context, p *domain.MembershipPlan) error { return nil }
func (r *stubPlanRepo) FindByID(ctx context.Context, id string) (*domain.MembershipPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	return p, nil
}
func (r *stubPlanRepo) List(ctx context.Context) ([]*domain.MembershipPlan, error) { return nil, nil }
func (r *stubPlanRepo) Update(ctx context.Context, p *domain.MembershipPlan) error { return nil }
func (r *stubPlanRepo) SetStatus(ctx context.Context, id string, status domain.Status) error {
	return nil
}
func (r *stubPlanRepo) Delete(ctx context.Context, id string) error { return nil }

func newMemberFixture() (*MemberService, *memMemberRepo) {
	members := newMemMemberRepo()
	plans := &stubPlanRepo{plans: map[string]*domain.MembershipPlan{
		"basic-1m": {ID: "basic-1m", PlanType: domain.PlanBasic, DurationMonths: 1, Status: domain.StatusActive},
		"premium-12m": {ID: "premium-12m", PlanType: domain.PlanPremium, DurationMonths: 12, Status: domain.StatusActive},
		"retired": {ID: "retired", PlanType: domain.PlanStandard, DurationMonths: 3, Status: domain.StatusInactive},
	}}
	return NewMemberService(members, plans, zerolog.Nop()), members
}

func TestMemberService_CreateComputesMembershipWindow(t *testing.T) {
	svc, _ := newMemberFixture()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	member, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Email:     "Jane@Gym.Test",
		FirstName: "Jane",
		PlanID:    "basic-1m",
		StartDate: start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if member.Email != "jane@gym.test" {
		t.Fatalf("email not normalized: %q", member.Email)
	}
	wantEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if !member.Membership.EndDate.Equal(wantEnd) {
		t.Fatalf("end date = %v, want %v", member.Membership.EndDate, wantEnd)
	}
}

func TestMemberService_CreateRejectsInactivePlan(t *testing.T) {
	svc, _ := newMemberFixture()

	_, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Email:  "jane@gym.test",
		PlanID: "retired",
	})
	if !errors.Is(err, domain.ErrPlanInactive) {
		t.Fatalf("expected ErrPlanInactive, got %v", err)
	}
}

func TestMemberService_CreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newMemberFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateMemberInput{Email: "jane@gym.test", PlanID: "basic-1m"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, ports.CreateMemberInput{Email: "JANE@gym.test", PlanID: "basic-1m"})
	if !errors.Is(err, domain.ErrMemberExists) {
		t.Fatalf("expected ErrMemberExists, got %v", err)
	}
}

func TestMemberService_UpdatePlanRecomputesEndDate(t *testing.T) {
	svc, _ := newMemberFixture()
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	member, err := svc.Create(ctx, ports.CreateMemberInput{
		Email: "jane@gym.test", PlanID: "basic-1m", StartDate: start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPlan := "premium-12m"
	updated, err := svc.Update(ctx, member.ID, ports.UpdateMemberInput{PlanID: &newPlan})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	wantEnd := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !updated.Membership.EndDate.Equal(wantEnd) {
		t.Fatalf("end date = %v, want %v", updated.Membership.EndDate, wantEnd)
	}
}

func TestMemberService_RenewReinstatesCancelled(t *testing.T) {
	svc, repo := newMemberFixture()
	ctx := context.Background()

	member, err := svc.Create(ctx, ports.CreateMemberInput{
		Email: "jane@gym.test", PlanID: "basic-1m",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.byID[member.ID].Membership.Status = domain.MembershipCancelled

	renewed, err := svc.Renew(ctx, member.ID, time.Time{})
	if err != nil {
		t.Fatalf("renew: %v", err)
	}
	if renewed.Membership.Status != domain.MembershipActive {
		t.Fatalf("status = %q, want ACTIVE", renewed.Membership.Status)
	}
	if renewed.Membership.RenewalDate == nil {
		t.Fatalf("renewal date not set")
	}
	if !renewed.Membership.EndDate.After(time.Now().UTC()) {
		t.Fatalf("renewed window should extend into the future, end = %v", renewed.Membership.EndDate)
	}
}

func TestMemberService_ListByMembershipStatusUsesDerived(t *testing.T) {
	svc, repo := newMemberFixture()
	ctx := context.Background()

	member, err := svc.Create(ctx, ports.CreateMemberInput{
		Email: "jane@gym.test", PlanID: "basic-1m",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// The stored status is stale ACTIVE; the window ended long ago.
	repo.byID[member.ID].Membership.Status = domain.MembershipActive

	expired, err := svc.ListByMembershipStatus(ctx, domain.MembershipExpired)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(expired) != 1 {
		t.Fatalf("lapsed membership should be reported EXPIRED, got %d entries", len(expired))
	}
}

func TestMemberService_EndingSoon(t *testing.T) {
	svc, repo := newMemberFixture()
	ctx := context.Background()
	today := time.Now().UTC()

	mk := func(id string, end time.Time) {
		repo.byID[id] = &domain.Member{
			ID: id, Email: id + "@gym.test", Status: domain.StatusActive,
			Membership: &domain.Membership{PlanID: "basic-1m", EndDate: end},
		}
	}
	mk("soon", today.AddDate(0, 0, 3))
	mk("edge", today.AddDate(0, 0, 7))
	mk("far", today.AddDate(0, 0, 30))
	mk("past", today.AddDate(0, 0, -3))

	got, err := svc.EndingSoon(ctx, 7)
	if err != nil {
		t.Fatalf("ending soon: %v", err)
	}

	ids := make(map[string]bool, len(got))
	for _, m := range got {
		ids[m.ID] = true
	}
	if !ids["soon"] || !ids["edge"] || ids["far"] || ids["past"] {
		t.Fatalf("unexpected ending-soon set: %v", ids)
	}
}
