package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shubhgupta/shubh-dev/internal/blog"
)

// BlogService serves the content API from the sqlite store, applying the
// shared filter/sort/paginate engine server-side. It satisfies
// blog.Service, so the API handlers take it interchangeably with the mock
// and remote strategies.
type BlogService struct {
	store *Store
}

// NewBlogService wraps the store as a blog.Service.
func NewBlogService(s *Store) *BlogService { return &BlogService{store: s} }

func (b *BlogService) GetPosts(ctx context.Context, filters *blog.Filters) (*blog.PaginatedPreviews, error) {
	previews, err := b.store.ListPosts()
	if err != nil {
		return nil, err
	}
	previews = blog.ApplyFilters(previews, filters)

	page, limit := 0, 0
	if filters != nil {
		page, limit = filters.Page, filters.Limit
	}
	data, pagination := blog.Paginate(previews, page, limit)
	return &blog.PaginatedPreviews{Data: data, Pagination: pagination}, nil
}

func (b *BlogService) GetPostBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	post, err := b.store.GetPostBySlug(slug)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", blog.ErrNotFound, slug)
	}
	return post, err
}

func (b *BlogService) GetTags(ctx context.Context) ([]string, error) {
	previews, err := b.store.ListPosts()
	if err != nil {
		return nil, err
	}
	return blog.ExtractTags(previews), nil
}

func (b *BlogService) SearchPosts(ctx context.Context, query string) ([]blog.Preview, error) {
	previews, err := b.store.ListPosts()
	if err != nil {
		return nil, err
	}
	return blog.ApplyFilters(previews, &blog.Filters{Search: query}), nil
}
