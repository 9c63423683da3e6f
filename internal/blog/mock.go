package blog

import (
	"context"
	"time"
)

// DefaultMockLatency approximates a real network round trip so UI loading
// states are exercised identically in mock and remote modes.
const DefaultMockLatency = 200 * time.Millisecond

// MockService serves blog content from a fixed in-memory collection. It
// honors the same filter/sort/paginate contract as the remote service.
type MockService struct {
	posts   []Post
	latency time.Duration
}

// NewMockService creates a mock service over the built-in post set.
func NewMockService() *MockService {
	return &MockService{posts: mockPosts, latency: DefaultMockLatency}
}

// NewMockServiceWithPosts creates a mock service over the given posts.
// Tests use this with zero latency.
func NewMockServiceWithPosts(posts []Post, latency time.Duration) *MockService {
	return &MockService{posts: posts, latency: latency}
}

// GetPosts lists previews matching filters, one page at a time.
func (m *MockService) GetPosts(ctx context.Context, filters *Filters) (*PaginatedPreviews, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}

	previews := m.previews()
	previews = ApplyFilters(previews, filters)

	page, limit := 0, 0
	if filters != nil {
		page, limit = filters.Page, filters.Limit
	}
	data, pagination := Paginate(previews, page, limit)
	return &PaginatedPreviews{Data: data, Pagination: pagination}, nil
}

// GetPostBySlug returns the full document, or ErrNotFound.
func (m *MockService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	for i := range m.posts {
		if m.posts[i].Slug == slug {
			post := m.posts[i]
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

// GetTags returns every tag across all posts, deduplicated and sorted.
func (m *MockService) GetTags(ctx context.Context) ([]string, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	return ExtractTags(m.previews()), nil
}

// SearchPosts matches query case-insensitively against title, excerpt and
// tag names.
func (m *MockService) SearchPosts(ctx context.Context, query string) ([]Preview, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	return ApplyFilters(m.previews(), &Filters{Search: query}), nil
}

func (m *MockService) previews() []Preview {
	previews := make([]Preview, len(m.posts))
	for i := range m.posts {
		previews[i] = m.posts[i].Preview()
	}
	return previews
}

// sleep simulates network latency while staying cancellable.
func (m *MockService) sleep(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
