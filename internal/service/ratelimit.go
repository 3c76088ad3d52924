package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heromap/backend/pkg/apperror"
)

// CheckAndSetRateLimit arms a per-user, per-action cooldown. A nil client
// disables rate limiting entirely (tests, local runs without redis).
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, callerID, action string, limit time.Duration) (bool, error) {
	if rdb == nil || limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:user:%s:%s", callerID, action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, callerID, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	key := fmt.Sprintf("rate_limit:user:%s:%s", callerID, action)
	return rdb.TTL(ctx, key).Result()
}

func enforceRateLimit(ctx context.Context, rdb *redis.Client, callerID, action string, limit time.Duration) error {
	allowed, err := CheckAndSetRateLimit(ctx, rdb, callerID, action, limit)
	if err != nil {
		return err
	}
	if !allowed {
		ttl, _ := GetRateLimitTTL(ctx, rdb, callerID, action)
		return apperror.New(apperror.ErrRateLimited,
			fmt.Sprintf("you are doing that too fast, please wait %.0f seconds", ttl.Seconds()))
	}
	return nil
}
