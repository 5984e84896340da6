package ports

import (
	"context"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// PlanRepository defines persistence for the membership plan catalog.
type PlanRepository interface {
	Create(ctx context.Context, p *domain.MembershipPlan) error
	FindByID(ctx context.Context, id string) (*domain.MembershipPlan, error)
	List(ctx context.Context) ([]*domain.MembershipPlan, error)
	Update(ctx context.Context, p *domain.MembershipPlan) error
	SetStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

// PlanInput carries the catalog fields for create and update.
type PlanInput struct {
	PlanType       domain.PlanType
	Price          float64
	Description    string
	DurationMonths int
}

// PlanService defines catalog management use cases.
type PlanService interface {
	Create(ctx context.Context, input PlanInput) (*domain.MembershipPlan, error)
	Get(ctx context.Context, id string) (*domain.MembershipPlan, error)
	List(ctx context.Context) ([]*domain.MembershipPlan, error)
	Update(ctx context.Context, id string, input PlanInput) (*domain.MembershipPlan, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
