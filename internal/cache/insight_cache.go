package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cgabhane/author-website/internal/model"
	"github.com/redis/go-redis/v9"
)

// InsightCache holds the last insight list until its TTL passes
type InsightCache interface {
	// Get returns the cached list; ok is false when nothing fresh is cached
	Get(ctx context.Context) (insights []model.Insight, ok bool, err error)
	Set(ctx context.Context, insights []model.Insight, ttl time.Duration) error
}

type insightEntry struct {
	Insights  []model.Insight `json:"insights"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

type insightCache struct {
	client *redis.Client
	key    string
}

// NewInsightCache creates a Redis-backed insight cache; expiry is the key TTL
func NewInsightCache(client *redis.Client, prefix string) InsightCache {
	return &insightCache{
		client: client,
		key:    prefix + "insights",
	}
}

func (c *insightCache) Get(ctx context.Context) ([]model.Insight, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entry insightEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, err
	}
	return entry.Insights, true, nil
}

func (c *insightCache) Set(ctx context.Context, insights []model.Insight, ttl time.Duration) error {
	data, err := json.Marshal(insightEntry{Insights: insights, FetchedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, ttl).Err()
}

// Clock returns the current time; tests substitute a fake
type Clock func() time.Time

type memoryInsightCache struct {
	mu        sync.RWMutex
	now       Clock
	insights  []model.Insight
	fetchedAt time.Time
	ttl       time.Duration
	set       bool
}

// NewMemoryInsightCache creates a process-local insight cache. A nil clock
// uses time.Now.
func NewMemoryInsightCache(now Clock) InsightCache {
	if now == nil {
		now = time.Now
	}
	return &memoryInsightCache{now: now}
}

func (c *memoryInsightCache) Get(_ context.Context) ([]model.Insight, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false, nil
	}
	return append([]model.Insight(nil), c.insights...), true, nil
}

func (c *memoryInsightCache) Set(_ context.Context, insights []model.Insight, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insights = append([]model.Insight(nil), insights...)
	c.fetchedAt = c.now()
	c.ttl = ttl
	c.set = true
	return nil
}
