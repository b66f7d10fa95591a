package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Chetan on Medium</title>
  <link>https://medium.com/@chetan</link>
  <item>
    <title>Sovereign Cloud in Practice</title>
    <link>https://medium.com/@chetan/sovereign-cloud</link>
    <guid>https://medium.com/p/abc123</guid>
    <pubDate>Mon, 01 Sep 2025 10:00:00 GMT</pubDate>
    <category>Cloud</category>
    <description>&lt;p&gt;Data residency is &lt;b&gt;not&lt;/b&gt; optional.&lt;/p&gt;</description>
  </item>
  <item>
    <title>Agents in Operations</title>
    <link>https://medium.com/@chetan/agents</link>
  </item>
</channel>
</rss>`

func TestFeedClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	items, err := NewFeedClient(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "https://medium.com/p/abc123", first.GUID)
	assert.Equal(t, "Sovereign Cloud in Practice", first.Title)
	assert.Equal(t, "https://medium.com/@chetan/sovereign-cloud", first.Link)
	require.NotNil(t, first.Published)
	assert.Equal(t, 2025, first.Published.Year())
	assert.Equal(t, []string{"Cloud"}, first.Categories)
	assert.Equal(t, "Data residency is not optional.", Excerpt(first.Summary, 150))

	assert.Empty(t, items[1].GUID)
	assert.Nil(t, items[1].Published)
}

func TestFeedClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewFeedClient(srv.URL, time.Second).Fetch(context.Background())
	assert.Error(t, err)

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a feed"))
	}))
	defer garbage.Close()

	_, err = NewFeedClient(garbage.URL, time.Second).Fetch(context.Background())
	assert.Error(t, err)
}
