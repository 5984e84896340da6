package ports

import (
	"context"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// RegisterInput carries the data needed to create a login credential.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// AuthService implements login and credential management. Login and
// ChangeEmail return a signed JWT whose subject is the user's email and
// whose "role" claim drives all authorization downstream.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email, firstName, lastName string) (*domain.User, error)
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	// ChangeEmail verifies the password, moves the credential to newEmail,
	// and reissues a token so the caller can swap principals without a
	// logout/login cycle.
	ChangeEmail(ctx context.Context, email, password, newEmail string) (string, *domain.User, error)
	// AdminUpdateProfile and AdminResetPassword act on any credential by id
	// without the current password; route guards restrict them to owners.
	AdminUpdateProfile(ctx context.Context, userID, firstName, lastName string) (*domain.User, error)
	AdminResetPassword(ctx context.Context, userID, newPassword string) error
}
