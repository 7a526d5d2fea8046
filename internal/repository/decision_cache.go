package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gomoku_exe/internal/domain"
)

const decisionKeyPrefix = "decision:"

type DecisionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDecisionCache(client *redis.Client, ttl time.Duration) *DecisionCache {
	return &DecisionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns ok == false on a miss.
func (c *DecisionCache) Get(ctx context.Context, key string) (domain.Decision, bool, error) {
	raw, err := c.client.Get(ctx, decisionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Decision{}, false, nil
	}
	if err != nil {
		return domain.Decision{}, false, fmt.Errorf("get decision %s: %w", key, err)
	}

	var d domain.Decision
	if err := json.Unmarshal(raw, &d); err != nil {
		return domain.Decision{}, false, fmt.Errorf("decode decision %s: %w", key, err)
	}
	return d, true, nil
}

func (c *DecisionCache) Set(ctx context.Context, key string, d domain.Decision) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode decision %s: %w", key, err)
	}
	if err := c.client.Set(ctx, decisionKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set decision %s: %w", key, err)
	}
	return nil
}
