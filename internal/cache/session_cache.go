package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cgabhane/author-website/internal/model"
	"github.com/redis/go-redis/v9"
)

// SessionCache stores in-progress assessment sessions with a sliding TTL
type SessionCache interface {
	Set(ctx context.Context, session *model.AssessmentSession) error
	Get(ctx context.Context, id string) (*model.AssessmentSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionCache creates a Redis-backed session cache
func NewSessionCache(client *redis.Client, prefix string, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *sessionCache) key(id string) string {
	return c.prefix + "session:" + id
}

func (c *sessionCache) Set(ctx context.Context, session *model.AssessmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.AssessmentSession, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.AssessmentSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

type sessionEntry struct {
	data      []byte
	expiresAt time.Time
}

type memorySessionCache struct {
	mu      sync.Mutex
	now     Clock
	ttl     time.Duration
	entries map[string]sessionEntry
}

// NewMemorySessionCache creates a process-local session cache. Entries are
// stored encoded so callers never share state with the cache.
func NewMemorySessionCache(ttl time.Duration, now Clock) SessionCache {
	if now == nil {
		now = time.Now
	}
	return &memorySessionCache{
		now:     now,
		ttl:     ttl,
		entries: make(map[string]sessionEntry),
	}
}

func (c *memorySessionCache) Set(_ context.Context, session *model.AssessmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()
	c.entries[session.ID] = sessionEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *memorySessionCache) Get(_ context.Context, id string) (*model.AssessmentSession, error) {
	c.mu.Lock()
	entry, ok := c.entries[id]
	if ok && !c.now().Before(entry.expiresAt) {
		delete(c.entries, id)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var session model.AssessmentSession
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *memorySessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

// sweep drops expired entries; caller holds mu
func (c *memorySessionCache) sweep() {
	now := c.now()
	for id, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, id)
		}
	}
}
