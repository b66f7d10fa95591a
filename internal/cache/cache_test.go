package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var sampleInsights = []model.Insight{
	{ID: "a", Title: "First", URL: "https://example.com/a"},
	{ID: "b", Title: "Second", URL: "https://example.com/b"},
}

func TestInsightCache_Redis(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewInsightCache(client, "test:")

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, sampleInsights, time.Hour))
	assert.True(t, mr.Exists("test:insights"))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleInsights, got)

	mr.FastForward(time.Hour)

	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInsightCache_RedisCorrupt(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	require.NoError(t, mr.Set("insights", "not json"))

	_, ok, err := NewInsightCache(client, "").Get(ctx)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestInsightCache_Memory(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryInsightCache(clock.Now)

	_, ok, _ := c.Get(ctx)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, sampleInsights, time.Hour))

	clock.Advance(59 * time.Minute)
	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleInsights, got)

	// returned slice is a copy
	got[0].Title = "changed"
	again, _, _ := c.Get(ctx)
	assert.Equal(t, "First", again[0].Title)

	clock.Advance(time.Minute)
	_, ok, _ = c.Get(ctx)
	assert.False(t, ok)
}

func newSession(id string) *model.AssessmentSession {
	return &model.AssessmentSession{
		ID: id,
		State: model.FlowState{
			Stage:         model.StageInProgress,
			QuestionIndex: 2,
			Answers: []model.Answer{
				{QuestionID: 1, SelectedOption: 1, Points: 4},
			},
		},
	}
}

func TestSessionCache_Redis(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewSessionCache(client, "test:", 2*time.Hour)

	require.NoError(t, c.Set(ctx, newSession("s1")))
	assert.True(t, mr.Exists("test:session:s1"))
	assert.Equal(t, 2*time.Hour, mr.TTL("test:session:s1"))

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.State.QuestionIndex)
	assert.Len(t, got.State.Answers, 1)

	missing, err := c.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, c.Delete(ctx, "s1"))
	gone, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSessionCache_RedisExpiry(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewSessionCache(client, "", time.Minute)

	require.NoError(t, c.Set(ctx, newSession("s1")))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionCache_Memory(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	c := NewMemorySessionCache(time.Hour, clock.Now)

	s := newSession("s1")
	require.NoError(t, c.Set(ctx, s))

	// mutating the caller's copy does not leak into the cache
	s.State.QuestionIndex = 9

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.State.QuestionIndex)

	clock.Advance(time.Hour)
	got, err = c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
