package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// LoginLimiterImpl implements domain.LoginLimiter with Redis-backed state.
// Counters are shared across processes, so a cluster of instances enforces
// one lockout window per identifier.
type LoginLimiterImpl struct {
	redisClient *redis.Client
	config      LimiterConfig
}

type LimiterConfig struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

// NewLoginLimiter creates a new Redis-based login limiter
func NewLoginLimiter(redisClient *redis.Client, config LimiterConfig) domain.LoginLimiter {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	if config.LockoutDuration <= 0 {
		config.LockoutDuration = 30 * time.Second
	}
	return &LoginLimiterImpl{
		redisClient: redisClient,
		config:      config,
	}
}

func attemptsKey(identifier string) string { return "login:att:" + identifier }
func lockKey(identifier string) string     { return "login:lock:" + identifier }

// Allow implements domain.LoginLimiter. While the lock key exists, attempts
// are rejected with the remaining wait reported in seconds. The transition
// back to open happens implicitly when the key's TTL expires.
func (l *LoginLimiterImpl) Allow(ctx context.Context, identifier string) (*domain.LockoutStatus, error) {
	ttl, err := l.redisClient.TTL(ctx, lockKey(identifier)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check lockout TTL: %w", err)
	}

	// TTL <= 0 means the key does not exist or has expired
	if ttl <= 0 {
		return &domain.LockoutStatus{Allowed: true}, nil
	}

	seconds := int64(ttl.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return &domain.LockoutStatus{Allowed: false, SecondsRemaining: seconds}, nil
}

// RecordFailure implements domain.LoginLimiter. The INCR is atomic, so
// concurrent failures for the same identifier never under-count. Reaching
// the threshold arms the lock and discards the counter.
func (l *LoginLimiterImpl) RecordFailure(ctx context.Context, identifier string) error {
	key := attemptsKey(identifier)

	count, err := l.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}

	// First failure creates the key; the expiry bounds how long a partial
	// streak of failures is remembered.
	if count == 1 {
		if err := l.redisClient.Expire(ctx, key, l.config.LockoutDuration).Err(); err != nil {
			return fmt.Errorf("failed to set attempts expiry: %w", err)
		}
	}

	if count >= int64(l.config.MaxAttempts) {
		if err := l.redisClient.Set(ctx, lockKey(identifier), 1, l.config.LockoutDuration).Err(); err != nil {
			return fmt.Errorf("failed to set lockout: %w", err)
		}
		if err := l.redisClient.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to reset attempts: %w", err)
		}
	}

	return nil
}

// RecordSuccess implements domain.LoginLimiter. Resets the identifier to
// the open state unconditionally.
func (l *LoginLimiterImpl) RecordSuccess(ctx context.Context, identifier string) error {
	if err := l.redisClient.Del(ctx, attemptsKey(identifier), lockKey(identifier)).Err(); err != nil {
		return fmt.Errorf("failed to reset limiter state: %w", err)
	}
	return nil
}
