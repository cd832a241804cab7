package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

const (
	summaryKeyPrefix = "professional:summary:"
	viewsKeyPrefix   = "professional:views:"
)

// SummaryCache keeps professional summary projections and profile-view
// counters in Redis. All methods degrade to cache misses when Redis is
// unavailable so the read path never depends on it.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache builds a cache over an existing Redis connection.
func NewSummaryCache(r *Redis, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &SummaryCache{client: client, ttl: ttl}
}

// GetProfessionalSummary returns the cached projection, if present.
func (c *SummaryCache) GetProfessionalSummary(ctx context.Context, id string) (*domain.ProfessionalSummary, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, summaryKeyPrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var summary domain.ProfessionalSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, false
	}
	return &summary, true
}

// SetProfessionalSummary stores the projection with the configured TTL.
func (c *SummaryCache) SetProfessionalSummary(ctx context.Context, summary domain.ProfessionalSummary) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKeyPrefix+summary.ID, raw, c.ttl).Err()
}

// InvalidateProfessionalSummary drops the cached projection after a mutation.
func (c *SummaryCache) InvalidateProfessionalSummary(ctx context.Context, id string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, summaryKeyPrefix+id).Err()
}

// IncrementProfileViews bumps the pending view counter for a professional.
// The counter is drained by the metrics aggregation job, not by this service.
func (c *SummaryCache) IncrementProfileViews(ctx context.Context, id string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, errors.New("redis client not configured")
	}
	return c.client.Incr(ctx, viewsKeyPrefix+id).Result()
}

// DrainProfileViews returns and resets the pending view counter.
func (c *SummaryCache) DrainProfileViews(ctx context.Context, id string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, errors.New("redis client not configured")
	}
	count, err := c.client.GetDel(ctx, viewsKeyPrefix+id).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("drain profile views: %w", err)
	}
	return count, nil
}
