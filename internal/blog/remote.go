package blog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shubhgupta/shubh-dev/internal/httpx"
)

// RemoteService fetches blog content from a configured content API.
// Filtering, sorting and pagination are delegated to the remote side.
type RemoteService struct {
	client *httpx.Client
}

// NewRemoteService creates a service backed by the content API at baseURL.
func NewRemoteService(baseURL string) *RemoteService {
	return &RemoteService{client: httpx.New(baseURL)}
}

// NewRemoteServiceWithClient is used by tests to point at a stub server.
func NewRemoteServiceWithClient(client *httpx.Client) *RemoteService {
	return &RemoteService{client: client}
}

func (r *RemoteService) GetPosts(ctx context.Context, filters *Filters) (*PaginatedPreviews, error) {
	var out PaginatedPreviews
	if err := r.client.Get(ctx, "/blog/posts", filterParams(filters), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RemoteService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	var out Post
	if err := r.client.Get(ctx, "/blog/posts/"+slug, nil, &out); err != nil {
		var apiErr *httpx.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, err
	}
	return &out, nil
}

func (r *RemoteService) GetTags(ctx context.Context) ([]string, error) {
	var out []string
	if err := r.client.Get(ctx, "/blog/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteService) SearchPosts(ctx context.Context, query string) ([]Preview, error) {
	var out []Preview
	params := []httpx.Param{{Key: "q", Value: query}}
	if err := r.client.Get(ctx, "/blog/search", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// filterParams maps Filters to query parameters, omitting unset fields.
func filterParams(f *Filters) []httpx.Param {
	if f == nil {
		return nil
	}
	var params []httpx.Param
	add := func(key, value string) {
		if value != "" {
			params = append(params, httpx.Param{Key: key, Value: value})
		}
	}
	add("search", f.Search)
	if len(f.Tags) > 0 {
		add("tags", strings.Join(f.Tags, ","))
	}
	add("author", f.Author)
	add("sortBy", f.SortBy)
	add("sortOrder", f.SortOrder)
	if f.Page > 0 {
		add("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		add("limit", strconv.Itoa(f.Limit))
	}
	return params
}
