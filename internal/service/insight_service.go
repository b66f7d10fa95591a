package service

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cgabhane/author-website/internal/cache"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/metrics"
	"github.com/cgabhane/author-website/internal/model"
	"golang.org/x/sync/singleflight"
)

// fallbackInsights are served when the feed is unreachable or empty
var fallbackInsights = []model.Insight{
	{
		ID:       "1",
		Title:    "Why Most Cloud Migrations Fail – and How to Fix It",
		URL:      "/blog/cloud-migrations",
		Category: "Cloud Strategy",
	},
	{
		ID:       "2",
		Title:    "The Rise of AI Agents in Cloud Operations",
		URL:      "/blog/ai-agents",
		Category: "AI Operations",
	},
	{
		ID:       "3",
		Title:    "Sovereign Cloud: Balancing Compliance and Innovation",
		URL:      "/blog/sovereign-cloud",
		Category: "Compliance",
	},
}

// FallbackInsights returns a copy of the built-in insight list
func FallbackInsights() []model.Insight {
	return append([]model.Insight(nil), fallbackInsights...)
}

// InsightOptions tune the insight listing
type InsightOptions struct {
	TTL           time.Duration
	FetchTimeout  time.Duration
	MaxItems      int
	ExcerptLength int
	Now           func() time.Time
}

// InsightService lists recent articles from the external feed
type InsightService struct {
	fetcher FeedFetcher
	cache   cache.InsightCache
	log     logger.Logger
	opts    InsightOptions
	group   singleflight.Group

	// last refreshed list, served while the shared cache is unreadable
	mu           sync.Mutex
	local        []model.Insight
	localExpires time.Time
}

func NewInsightService(fetcher FeedFetcher, c cache.InsightCache, log logger.Logger, opts InsightOptions) *InsightService {
	if opts.MaxItems <= 0 {
		opts.MaxItems = 5
	}
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = 150
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &InsightService{
		fetcher: fetcher,
		cache:   c,
		log:     log,
		opts:    opts,
	}
}

// GetInsights returns the cached list while fresh, otherwise refreshes it
// from the feed. It never fails: on any fetch problem the fallback list is
// returned and cached.
func (s *InsightService) GetInsights(ctx context.Context) []model.Insight {
	if cached, ok := s.cached(ctx); ok {
		metrics.InsightFetches.WithLabelValues(metrics.InsightCacheHit).Inc()
		return cached
	}

	v, _, _ := s.group.Do("insights", func() (interface{}, error) {
		// another caller may have refreshed while we waited
		if cached, ok := s.cached(ctx); ok {
			return cached, nil
		}
		return s.refresh(context.WithoutCancel(ctx)), nil
	})
	insights := v.([]model.Insight)
	return append([]model.Insight(nil), insights...)
}

func (s *InsightService) cached(ctx context.Context) ([]model.Insight, bool) {
	insights, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.WithError(err).Warn("insight cache read failed", nil)
		return s.lastGood()
	}
	return insights, ok
}

func (s *InsightService) lastGood() ([]model.Insight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.local == nil || !s.opts.Now().Before(s.localExpires) {
		return nil, false
	}
	return append([]model.Insight(nil), s.local...), true
}

func (s *InsightService) remember(insights []model.Insight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = append([]model.Insight(nil), insights...)
	s.localExpires = s.opts.Now().Add(s.opts.TTL)
}

func (s *InsightService) refresh(ctx context.Context) []model.Insight {
	fetchCtx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	insights, outcome := s.fetch(fetchCtx)
	metrics.InsightFetches.WithLabelValues(outcome).Inc()

	s.remember(insights)
	if err := s.cache.Set(ctx, insights, s.opts.TTL); err != nil {
		s.log.WithError(err).Warn("insight cache write failed", nil)
	}
	return insights
}

func (s *InsightService) fetch(ctx context.Context) ([]model.Insight, string) {
	items, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.log.WithError(err).Warn("feed fetch failed, serving fallback insights", nil)
		return FallbackInsights(), metrics.InsightFallback
	}
	if len(items) == 0 {
		s.log.Warn("feed returned no items, serving fallback insights", nil)
		return FallbackInsights(), metrics.InsightFallback
	}

	recent := mostRecent(items, s.opts.MaxItems)
	insights := make([]model.Insight, len(recent))
	for i, it := range recent {
		insights[i] = s.normalize(i, it)
	}
	return insights, metrics.InsightFetched
}

// mostRecent orders items newest first (undated last, feed order kept
// among equals) and keeps at most n
func mostRecent(items []FeedItem, n int) []FeedItem {
	sorted := append([]FeedItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Published, sorted[j].Published
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func (s *InsightService) normalize(i int, it FeedItem) model.Insight {
	id := strings.TrimSpace(it.GUID)
	if id == "" {
		id = fmt.Sprintf("insight-%d", i+1)
	}

	summary := it.Summary
	if strings.TrimSpace(summary) == "" {
		summary = it.Content
	}

	ins := model.Insight{
		ID:      id,
		Title:   strings.TrimSpace(it.Title),
		URL:     strings.TrimSpace(it.Link),
		Excerpt: Excerpt(summary, s.opts.ExcerptLength),
	}
	if it.Published != nil {
		ins.PublishedDate = it.Published.UTC().Format(time.RFC3339)
	}
	if len(it.Categories) > 0 {
		ins.Category = it.Categories[0]
	}
	return ins
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Excerpt strips markup from s and truncates it to at most max characters,
// the last one being an ellipsis when cut
func Excerpt(s string, max int) string {
	text := tagPattern.ReplaceAllString(s, " ")
	text = html.UnescapeString(text)
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))

	if utf8.RuneCountInString(text) <= max {
		return text
	}
	if max <= 1 {
		return string([]rune(text)[:max])
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
