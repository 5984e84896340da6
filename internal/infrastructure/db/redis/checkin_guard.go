package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 30 * time.Second

// CheckInGuard absorbs duplicate check-in submissions backed by Redis.
// Key format: checkin:<member_id>
type CheckInGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckInGuard creates a CheckInGuard wrapping the given Redis client.
func NewCheckInGuard(client *redis.Client) *CheckInGuard {
	return &CheckInGuard{client: client, ttl: guardTTL}
}

// IsDuplicate reports whether a check-in for this member was marked recently.
func (g *CheckInGuard) IsDuplicate(ctx context.Context, memberID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(memberID)).Result()
	if err != nil {
		return false, fmt.Errorf("check-in guard: %w", err)
	}
	return n > 0, nil
}

// Mark records a successful check-in for this member (expires after the guard TTL).
func (g *CheckInGuard) Mark(ctx context.Context, memberID string) error {
	return g.client.Set(ctx, g.key(memberID), "1", g.ttl).Err()
}

func (g *CheckInGuard) key(memberID string) string {
	return fmt.Sprintf("checkin:%s", memberID)
}
