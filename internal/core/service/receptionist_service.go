package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// ReceptionistService manages front-desk staff. Creating a receptionist
// also creates the login credential; deactivating one blocks their login.
type ReceptionistService struct {
	receptionists ports.ReceptionistRepository
	users         ports.UserRepository
	log           zerolog.Logger
}

func NewReceptionistService(receptionists ports.ReceptionistRepository, users ports.UserRepository, log zerolog.Logger) *ReceptionistService {
	return &ReceptionistService{receptionists: receptionists, users: users, log: log}
}

func (s *ReceptionistService) Create(ctx context.Context, input ports.CreateReceptionistInput) (*domain.Receptionist, error) {
	email := normalizeEmail(input.Email)
	if existing, err := s.receptionists.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrReceptionistExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		Role:         domain.RoleReceptionist,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	rec := &domain.Receptionist{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Shift:     input.Shift,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.receptionists.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create receptionist: %w", err)
	}

	s.log.Info().Str("receptionist_id", rec.ID).Msg("receptionist created")
	return rec, nil
}

func (s *ReceptionistService) Get(ctx context.Context, id string) (*domain.Receptionist, error) {
	return s.receptionists.FindByID(ctx, id)
}

func (s *ReceptionistService) List(ctx context.Context) ([]*domain.Receptionist, error) {
	return s.receptionists.List(ctx)
}

func (s *ReceptionistService) Update(ctx context.Context, id string, input ports.UpdateReceptionistInput) (*domain.Receptionist, error) {
	rec, err := s.receptionists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		rec.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		rec.LastName = *input.LastName
	}
	if input.Phone != nil {
		rec.Phone = *input.Phone
	}
	if input.Shift != nil {
		rec.Shift = *input.Shift
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := s.receptionists.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update receptionist: %w", err)
	}
	return rec, nil
}

func (s *ReceptionistService) Activate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusActive)
}

func (s *ReceptionistService) Deactivate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusInactive)
}

func (s *ReceptionistService) Delete(ctx context.Context, id string) error {
	rec, err := s.receptionists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Block the credential first so a failed record delete cannot leave a
	// working login for a removed staff member.
	if err := s.users.SetStatusByEmail(ctx, rec.Email, domain.StatusInactive); err != nil {
		s.log.Warn().Err(err).Str("email", rec.Email).Msg("failed to disable receptionist credential")
	}
	return s.receptionists.Delete(ctx, id)
}

func (s *ReceptionistService) setStatus(ctx context.Context, id string, status domain.Status) error {
	rec, err := s.receptionists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.SetStatusByEmail(ctx, rec.Email, status); err != nil {
		s.log.Warn().Err(err).Str("email", rec.Email).Msg("failed to sync receptionist credential status")
	}
	return s.receptionists.SetStatus(ctx, id, status)
}
