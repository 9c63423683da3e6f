package technews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const gnewsEndpoint = "https://gnews.io/api/v4/top-headlines"

// UpstreamError carries a non-success upstream status and its raw body so
// the handler can propagate both.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gnews status %d: %s", e.Status, e.Body)
}

// Fetcher fetches the headlines feed. The handler takes the interface so
// tests can substitute a spy.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Article, error)
}

// GNewsClient fetches technology headlines from GNews with a fixed query.
type GNewsClient struct {
	apiKey string
	base   string
	http   *http.Client
}

// NewGNewsClient creates a client authenticated by apiKey.
func NewGNewsClient(apiKey string) *GNewsClient {
	return &GNewsClient{
		apiKey: apiKey,
		base:   gnewsEndpoint,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewGNewsClientWithBase points the client at a stub server in tests.
func NewGNewsClientWithBase(apiKey, base string) *GNewsClient {
	c := NewGNewsClient(apiKey)
	c.base = base
	return c
}

// Fetch calls the upstream and returns normalized articles.
func (g *GNewsClient) Fetch(ctx context.Context) ([]Article, error) {
	params := url.Values{}
	params.Set("category", "technology")
	params.Set("lang", "en")
	params.Set("country", "us")
	params.Set("max", "10")
	params.Set("apikey", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build gnews request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var payload upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode gnews response: %w", err)
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, a.normalize())
	}
	return articles, nil
}
