package ports

import (
	"context"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// ReceptionistRepository defines persistence for front-desk staff records.
type ReceptionistRepository interface {
	Create(ctx context.Context, r *domain.Receptionist) error
	FindByID(ctx context.Context, id string) (*domain.Receptionist, error)
	FindByEmail(ctx context.Context, email string) (*domain.Receptionist, error)
	List(ctx context.Context) ([]*domain.Receptionist, error)
	Update(ctx context.Context, r *domain.Receptionist) error
	SetStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

// CreateReceptionistInput creates both the staff record and the login
// credential (role RECEPTIONIST) in one step.
type CreateReceptionistInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Shift     string
}

// UpdateReceptionistInput carries mutable fields. Nil means unchanged.
type UpdateReceptionistInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Shift     *string
}

// ReceptionistService defines staff management use cases.
type ReceptionistService interface {
	Create(ctx context.Context, input CreateReceptionistInput) (*domain.Receptionist, error)
	Get(ctx context.Context, id string) (*domain.Receptionist, error)
	List(ctx context.Context) ([]*domain.Receptionist, error)
	Update(ctx context.Context, id string, input UpdateReceptionistInput) (*domain.Receptionist, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
