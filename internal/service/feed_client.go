package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedItem is the subset of a feed entry the insight listing uses
type FeedItem struct {
	GUID       string
	Title      string
	Link       string
	Published  *time.Time
	Summary    string
	Content    string
	Categories []string
}

// FeedFetcher retrieves the entries of the external content feed
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]FeedItem, error)
}

// FeedClient fetches and parses an RSS or Atom feed with gofeed
type FeedClient struct {
	url    string
	parser *gofeed.Parser
}

// NewFeedClient creates a client with a bounded HTTP timeout
func NewFeedClient(url string, timeout time.Duration) *FeedClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "author-website/1.0"
	return &FeedClient{url: url, parser: parser}
}

func (c *FeedClient) Fetch(ctx context.Context) ([]FeedItem, error) {
	feed, err := c.parser.ParseURLWithContext(c.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", c.url, err)
	}

	items := make([]FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		published := it.PublishedParsed
		if published == nil {
			published = it.UpdatedParsed
		}
		items = append(items, FeedItem{
			GUID:       it.GUID,
			Title:      it.Title,
			Link:       it.Link,
			Published:  published,
			Summary:    it.Description,
			Content:    it.Content,
			Categories: it.Categories,
		})
	}
	return items, nil
}
