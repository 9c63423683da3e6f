package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhgupta/shubh-dev/internal/blog"
	"github.com/shubhgupta/shubh-dev/internal/contact"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetPost(t *testing.T) {
	s := testStore(t)

	post := blog.Post{
		Title:     "Testing in Go",
		Excerpt:   "Why table tests earn their keep.",
		Content:   "# Testing in Go\n\nSome content here.",
		Author:    "Shubh Gupta",
		AuthorBio: "Graduate SDE at Fynd",
		Date:      "2025-12-01",
		Tags:      []string{"Go", "Testing"},
		Published: true,
	}
	require.NoError(t, s.CreatePost(&post))

	// Derived fields are filled in.
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "testing-in-go", post.Slug)
	assert.Equal(t, "1 min read", post.ReadTime)

	got, err := s.GetPostBySlug("testing-in-go")
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, []string{"Go", "Testing"}, got.Tags)
	assert.True(t, got.Published)
}

func TestGetPostBySlugNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.GetPostBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnpublishedPostsAreHidden(t *testing.T) {
	s := testStore(t)

	draft := blog.Post{
		Title: "Draft", Excerpt: "e", Content: "c", Author: "a", AuthorBio: "b",
		Date: "2025-01-01", Published: false,
	}
	require.NoError(t, s.CreatePost(&draft))

	_, err := s.GetPostBySlug(draft.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	previews, err := s.ListPosts()
	require.NoError(t, err)
	assert.Empty(t, previews)
}

func TestSeedPostsOnlyWhenEmpty(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.SeedPosts(blog.MockPosts()))
	n, err := s.CountPosts()
	require.NoError(t, err)
	assert.Equal(t, len(blog.MockPosts()), n)

	// A second seed is a no-op.
	require.NoError(t, s.SeedPosts(blog.MockPosts()))
	n, err = s.CountPosts()
	require.NoError(t, err)
	assert.Equal(t, len(blog.MockPosts()), n)
}

func TestContactLifecycle(t *testing.T) {
	s := testStore(t)

	form := &contact.FormData{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "A message.",
	}
	sub, err := s.CreateContact(form)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusPending, sub.Status)
	assert.NotEmpty(t, sub.ID)

	require.NoError(t, s.UpdateContactStatus(sub.ID, contact.StatusRead))
	got, err := s.GetContact(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, got.Status)

	subs, err := s.ListContacts()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)
}

func TestCreateContactValidates(t *testing.T) {
	s := testStore(t)

	_, err := s.CreateContact(&contact.FormData{Name: "x", Email: "bad", Subject: "s", Message: "m"})
	assert.Error(t, err)
}

func TestUpdateContactStatusNotFound(t *testing.T) {
	s := testStore(t)
	err := s.UpdateContactStatus("nope", contact.StatusRead)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVisitorMetrics(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.RecordVisitor("ip-hash-1", "agent", "/"))
	require.NoError(t, s.RecordVisitor("ip-hash-1", "agent", "/blog"))
	require.NoError(t, s.RecordVisitor("ip-hash-2", "agent", "/"))

	stats, err := s.GetVisitorStats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.Len(t, stats.RecentVisitors, 3)

	removed, err := s.CleanupVisitors()
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestBlogServiceGetPosts(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SeedPosts(blog.MockPosts()))
	svc := NewBlogService(s)

	page, err := svc.GetPosts(context.Background(), &blog.Filters{Search: "kafka"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "building-scalable-data-pipelines-with-kafka", page.Data[0].Slug)
}

func TestBlogServiceNotFound(t *testing.T) {
	s := testStore(t)
	svc := NewBlogService(s)

	_, err := svc.GetPostBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, blog.ErrNotFound)
}

func TestBlogServiceTags(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SeedPosts(blog.MockPosts()))
	svc := NewBlogService(s)

	tags, err := svc.GetTags(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tags, "Kafka")
	assert.Contains(t, tags, "Backend")
}
