package ports

import (
	"context"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// UserRepository defines persistence for login credentials.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateEmail(ctx context.Context, id, newEmail string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfile(ctx context.Context, id, firstName, lastName string) error
	SetStatusByEmail(ctx context.Context, email string, status domain.Status) error
	CountByRole(ctx context.Context, role string) (int64, error)
}
