package ports

import (
	"context"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// NotificationRepository defines persistence for the owner notification feed.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	ListByRole(ctx context.Context, role string) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, role string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, role string) error
}

// NotificationService defines the owner notification use cases.
type NotificationService interface {
	// NotifyOwner appends an entry to the owner feed. Failures are expected
	// to be treated as non-fatal by callers.
	NotifyOwner(ctx context.Context, title, message string) error
	List(ctx context.Context, role string) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, role string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, role string) error
}
