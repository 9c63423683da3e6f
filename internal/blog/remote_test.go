package blog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhgupta/shubh-dev/internal/httpx"
)

func TestRemoteGetPostsSendsFilterParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/blog/posts", r.URL.Path)
		json.NewEncoder(w).Encode(PaginatedPreviews{
			Data:       []Preview{{Slug: "a"}},
			Pagination: Pagination{Page: 2, Limit: 5, Total: 11, TotalPages: 3},
		})
	}))
	defer srv.Close()

	svc := NewRemoteService(srv.URL)
	page, err := svc.GetPosts(context.Background(), &Filters{
		Search: "kafka",
		Tags:   []string{"Kafka", "Backend"},
		SortBy: SortByDate,
		Page:   2,
		Limit:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, "search=kafka&tags=Kafka%2CBackend&sortBy=date&page=2&limit=5", gotQuery)
}

func TestRemoteGetPostBySlugNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "post not found"})
	}))
	defer srv.Close()

	svc := NewRemoteService(srv.URL)
	_, err := svc.GetPostBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteGetPostBySlugUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewRemoteService(srv.URL)
	_, err := svc.GetPostBySlug(context.Background(), "any")

	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestRemoteSearchPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blog/search", r.URL.Path)
		assert.Equal(t, "kafka", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode([]Preview{{Slug: "kafka-post"}})
	}))
	defer srv.Close()

	svc := NewRemoteService(srv.URL)
	results, err := svc.SearchPosts(context.Background(), "kafka")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "kafka-post", results[0].Slug)
}

func TestRemoteGetTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blog/tags", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"Backend", "Kafka"})
	}))
	defer srv.Close()

	svc := NewRemoteService(srv.URL)
	tags, err := svc.GetTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend", "Kafka"}, tags)
}
