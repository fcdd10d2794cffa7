package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cooldownKeyPrefix = "otp:resend:"

// CooldownLimiter throttles OTP resends per email address. The reservation is
// a SET NX with a TTL, so the window holds across instances and survives
// process restarts.
type CooldownLimiter struct {
	client *redis.Client
	window time.Duration
}

func NewCooldownLimiter(client *redis.Client, window time.Duration) *CooldownLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &CooldownLimiter{client: client, window: window}
}

// Reserve claims the resend slot for the given email. It returns false when a
// reservation already exists inside the window.
func (l *CooldownLimiter) Reserve(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := l.client.SetNX(ctx, cooldownKeyPrefix+email, "1", l.window).Result()
	if err != nil {
		return false, fmt.Errorf("reserve resend slot: %w", err)
	}
	return ok, nil
}

// Release drops the reservation so the address can request again immediately.
func (l *CooldownLimiter) Release(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := l.client.Del(ctx, cooldownKeyPrefix+email).Err(); err != nil {
		return fmt.Errorf("release resend slot: %w", err)
	}
	return nil
}
