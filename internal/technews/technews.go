// Package technews proxies a third-party headlines feed, normalizing its
// shape and caching the result so the rate-limited upstream is not
// hammered on every page load.
package technews

import (
	"encoding/json"
	"sync"
	"time"
)

// CacheTTL is the freshness window. The upstream free tier refreshes
// twice a day, so 6 hours keeps us comfortably under the quota.
const CacheTTL = 6 * time.Hour

// Article is the normalized article shape served to the widget.
type Article struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	Image       *string `json:"image"`
	PublishedAt string  `json:"publishedAt"`
}

// upstreamResponse is the GNews top-headlines payload.
type upstreamResponse struct {
	Articles []upstreamArticle `json:"articles"`
}

type upstreamArticle struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Source      sourceField `json:"source"`
	Image       string      `json:"image"`
	PublishedAt string      `json:"publishedAt"`
}

// sourceField accepts the source as either a nested object or a bare
// string, flattening to the name either way.
type sourceField struct {
	Name string
}

func (s *sourceField) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Name = obj.Name
	return nil
}

func (a upstreamArticle) normalize() Article {
	out := Article{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		Source:      a.Source.Name,
		PublishedAt: a.PublishedAt,
	}
	if a.Image != "" {
		img := a.Image
		out.Image = &img
	}
	return out
}

// Cache holds the single cached payload. One entry exists per process;
// each successful fetch overwrites it whole. Concurrent requests that both
// observe a stale entry may both fetch and both overwrite; last write
// wins, which is fine for an idempotent payload.
type Cache struct {
	mu        sync.Mutex
	fetchedAt time.Time
	articles  []Article
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// Get returns the cached articles if they are still fresh at now.
func (c *Cache) Get(now time.Time) ([]Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.articles == nil || now.Sub(c.fetchedAt) >= CacheTTL {
		return nil, false
	}
	return c.articles, true
}

// Set overwrites the cache entry.
func (c *Cache) Set(now time.Time, articles []Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = now
	c.articles = articles
}
