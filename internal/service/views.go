package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/heromap/backend/internal/repository"
	"github.com/heromap/backend/pkg/logger"
)

const viewKeyPrefix = "point_views:"

// ViewCounter buffers point view bumps in redis and periodically folds them
// into the points table. Without redis it writes through immediately.
type ViewCounter struct {
	rdb       *redis.Client
	pointRepo repository.PointRepository
}

func NewViewCounter(rdb *redis.Client, pointRepo repository.PointRepository) *ViewCounter {
	return &ViewCounter{rdb: rdb, pointRepo: pointRepo}
}

func (v *ViewCounter) Bump(ctx context.Context, pointID uuid.UUID) {
	if v.rdb == nil {
		if err := v.pointRepo.IncrementViews(ctx, pointID, 1); err != nil && logger.Log != nil {
			logger.Log.Warn("failed to bump views", zap.String("point_id", pointID.String()), zap.Error(err))
		}
		return
	}

	key := viewKeyPrefix + pointID.String()
	if err := v.rdb.Incr(ctx, key).Err(); err != nil && logger.Log != nil {
		logger.Log.Warn("failed to buffer view bump", zap.String("point_id", pointID.String()), zap.Error(err))
	}
}

// Flush drains every buffered counter into the database. Counters are removed
// with GETDEL so a bump arriving mid-flush lands in the next round.
func (v *ViewCounter) Flush(ctx context.Context) error {
	if v.rdb == nil {
		return nil
	}

	iter := v.rdb.Scan(ctx, 0, viewKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		val, err := v.rdb.GetDel(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return fmt.Errorf("failed to drain view counter %s: %w", key, err)
		}

		delta, err := strconv.Atoi(val)
		if err != nil || delta == 0 {
			continue
		}

		pointID, err := uuid.Parse(strings.TrimPrefix(key, viewKeyPrefix))
		if err != nil {
			continue
		}

		if err := v.pointRepo.IncrementViews(ctx, pointID, delta); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Start runs Flush on a ticker until the context is cancelled.
func (v *ViewCounter) Start(ctx context.Context, interval time.Duration) {
	if v.rdb == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := v.Flush(ctx); err != nil && logger.Log != nil {
					logger.Log.Error("view counter flush failed", zap.Error(err))
				}
			}
		}
	}()
}
