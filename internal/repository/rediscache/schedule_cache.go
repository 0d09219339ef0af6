// Package rediscache implements Redis-backed read caches.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
	"github.com/redis/go-redis/v9"
)

const (
	scheduleKeyPrefix    = "schedule:"
	scheduleKeySetPrefix = "schedule:keys:"

	// Schedules change whenever an interview or event is written, so
	// entries are short-lived even without explicit invalidation.
	scheduleTTL = 60 * time.Second
)

type scheduleCache struct {
	client *redis.Client
}

// NewScheduleCache creates a Redis-backed schedule cache
func NewScheduleCache(client *redis.Client) calendar.ScheduleCache {
	return &scheduleCache{client: client}
}

func scheduleKey(actorID string, role user.Role, from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:%s",
		scheduleKeyPrefix,
		actorID,
		role,
		from.Format(timeutil.DateLayout),
		to.Format(timeutil.DateLayout),
	)
}

func actorKeySet(actorID string) string {
	return scheduleKeySetPrefix + actorID
}

// Get returns the cached schedule or calendar.ErrCacheMiss
func (c *scheduleCache) Get(ctx context.Context, actorID string, role user.Role, from, to time.Time) ([]calendar.ScheduleItem, error) {
	raw, err := c.client.Get(ctx, scheduleKey(actorID, role, from, to)).Bytes()
	if err == redis.Nil {
		return nil, calendar.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached schedule: %w", err)
	}

	var items []calendar.ScheduleItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached schedule: %w", err)
	}

	return items, nil
}

// Set stores the schedule and tracks its key for per-actor invalidation
func (c *scheduleCache) Set(ctx context.Context, actorID string, role user.Role, from, to time.Time, items []calendar.ScheduleItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	key := scheduleKey(actorID, role, from, to)

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, raw, scheduleTTL)
	pipe.SAdd(ctx, actorKeySet(actorID), key)
	pipe.Expire(ctx, actorKeySet(actorID), scheduleTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache schedule: %w", err)
	}

	return nil
}

// InvalidateActor drops every cached schedule for the actor
func (c *scheduleCache) InvalidateActor(ctx context.Context, actorID string) error {
	keys, err := c.client.SMembers(ctx, actorKeySet(actorID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list schedule keys: %w", err)
	}

	keys = append(keys, actorKeySet(actorID))
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate schedules: %w", err)
	}

	return nil
}
