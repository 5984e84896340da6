package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// NotificationService maintains the owner notification feed.
type NotificationService struct {
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, log: log}
}

func (s *NotificationService) NotifyOwner(ctx context.Context, title, message string) error {
	n := &domain.Notification{
		ID:        uuid.NewString(),
		Role:      domain.RoleOwner,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Insert(ctx, n); err != nil {
		return err
	}
	s.log.Debug().Str("title", title).Msg("owner notification created")
	return nil
}

func (s *NotificationService) List(ctx context.Context, role string) ([]*domain.Notification, error) {
	return s.notifications.ListByRole(ctx, role)
}

func (s *NotificationService) UnreadCount(ctx context.Context, role string) (int64, error) {
	return s.notifications.CountUnread(ctx, role)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, role string) error {
	return s.notifications.MarkAllRead(ctx, role)
}
