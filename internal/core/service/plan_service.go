package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// PlanService manages the membership plan catalog.
type PlanService struct {
	plans ports.PlanRepository
	log   zerolog.Logger
}

func NewPlanService(plans ports.PlanRepository, log zerolog.Logger) *PlanService {
	return &PlanService{plans: plans, log: log}
}

func (s *PlanService) Create(ctx context.Context, input ports.PlanInput) (*domain.MembershipPlan, error) {
	now := time.Now().UTC()
	plan := &domain.MembershipPlan{
		ID:             uuid.NewString(),
		PlanType:       input.PlanType,
		Price:          input.Price,
		Description:    input.Description,
		DurationMonths: input.DurationMonths,
		Status:         domain.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	s.log.Info().Str("plan_id", plan.ID).Str("plan_type", string(plan.PlanType)).Msg("plan created")
	return plan, nil
}

func (s *PlanService) Get(ctx context.Context, id string) (*domain.MembershipPlan, error) {
	return s.plans.FindByID(ctx, id)
}

func (s *PlanService) List(ctx context.Context) ([]*domain.MembershipPlan, error) {
	return s.plans.List(ctx)
}

func (s *PlanService) Update(ctx context.Context, id string, input ports.PlanInput) (*domain.MembershipPlan, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.PlanType = input.PlanType
	plan.Price = input.Price
	plan.Description = input.Description
	plan.DurationMonths = input.DurationMonths
	plan.UpdatedAt = time.Now().UTC()

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return plan, nil
}

func (s *PlanService) Activate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusActive)
}

func (s *PlanService) Deactivate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusInactive)
}

func (s *PlanService) Delete(ctx context.Context, id string) error {
	if _, err := s.plans.FindByID(ctx, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}

func (s *PlanService) setStatus(ctx context.Context, id string, status domain.Status) error {
	if _, err := s.plans.FindByID(ctx, id); err != nil {
		return err
	}
	return s.plans.SetStatus(ctx, id, status)
}
