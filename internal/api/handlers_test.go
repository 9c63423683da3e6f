package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhgupta/shubh-dev/internal/blog"
	"github.com/shubhgupta/shubh-dev/internal/chat"
	"github.com/shubhgupta/shubh-dev/internal/contact"
	"github.com/shubhgupta/shubh-dev/internal/logger"
	"github.com/shubhgupta/shubh-dev/internal/store"
	"github.com/shubhgupta/shubh-dev/internal/technews"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.SeedPosts(blog.MockPosts()))

	log := logger.NewNop()
	h := NewHandler(store.NewBlogService(st), st, nil, chat.NewClient(""), log)
	admin := NewAdmin("admin", "hunter2", st, log)
	tn := technews.NewHandler("", technews.NewCache(), nil, log)

	return NewRouter(Deps{
		Handler:  h,
		Admin:    admin,
		TechNews: tn,
		Store:    st,
		Log:      log,
	}), st
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetPosts(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/blog/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page blog.PaginatedPreviews
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Data, len(blog.MockPosts()))
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestGetPostsFiltered(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/blog/posts?search=kafka&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page blog.PaginatedPreviews
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "building-scalable-data-pipelines-with-kafka", page.Data[0].Slug)
	assert.Equal(t, 5, page.Pagination.Limit)
}

func TestGetPostBySlug(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/blog/posts/observability-beyond-dashboards", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var post blog.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.NotEmpty(t, post.Content)
}

func TestGetPostBySlugNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/blog/posts/no-such-post", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "post not found")
}

func TestGetTags(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/blog/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Contains(t, tags, "Kafka")
}

func TestSearchPostsEmptyQuery(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/blog/search?q=zzzznomatch", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSubmitContact(t *testing.T) {
	r, st := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/contact/submit", gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "Interested in your Kafka write-up.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pending", resp.Data.Status)

	subs, err := st.ListContacts()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, resp.Data.ID, subs[0].ID)
}

func TestSubmitContactInvalid(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/contact/submit", gin.H{
		"name":    "Ada",
		"email":   "not-an-email",
		"subject": "Hello",
		"message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestChatRequiresMessage(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/chat", gin.H{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatUnconfiguredKeyStillReplies(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/chat", gin.H{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "GEMINI_API_KEY")
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/admin/stats", "/api/contact/submissions"} {
		w := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/admin/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/admin/login", gin.H{"username": "admin", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_submissions")
}

func TestAdminLoginUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	log := logger.NewNop()
	h := NewHandler(store.NewBlogService(st), st, nil, chat.NewClient(""), log)
	admin := NewAdmin("", "", st, log)
	r := NewRouter(Deps{
		Handler:  h,
		Admin:    admin,
		TechNews: technews.NewHandler("", technews.NewCache(), nil, log),
		Store:    st,
		Log:      log,
	})

	w := do(r, http.MethodPost, "/admin/login", gin.H{"username": "a", "password": "b"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUpdateSubmissionStatus(t *testing.T) {
	r, st := newTestRouter(t)

	w := do(r, http.MethodPost, "/admin/login", gin.H{"username": "admin", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	sub, err := st.CreateContact(&contact.FormData{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Interested in your Kafka write-up.",
	})
	require.NoError(t, err)

	raw, _ := json.Marshal(gin.H{"status": "read"})
	req := httptest.NewRequest(http.MethodPatch, "/api/contact/submissions/"+sub.ID+"/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := st.GetContact(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "read", got.Status)
}

func TestCORSHeadersPresent(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
