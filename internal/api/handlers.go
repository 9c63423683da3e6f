package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/shubhgupta/shubh-dev/internal/blog"
	"github.com/shubhgupta/shubh-dev/internal/chat"
	"github.com/shubhgupta/shubh-dev/internal/contact"
	"github.com/shubhgupta/shubh-dev/internal/logger"
	"github.com/shubhgupta/shubh-dev/internal/store"
)

// Handler holds the HTTP request handlers and their collaborators.
type Handler struct {
	blog         blog.Service
	store        *store.Store
	notifier     *contact.Notifier
	chatClient   *chat.Client
	conversation *chat.Conversation
	submitLimit  *rate.Limiter
	log          logger.Logger
}

// NewHandler creates a handler instance.
func NewHandler(blogSvc blog.Service, st *store.Store, notifier *contact.Notifier, chatClient *chat.Client, log logger.Logger) *Handler {
	return &Handler{
		blog:         blogSvc,
		store:        st,
		notifier:     notifier,
		chatClient:   chatClient,
		conversation: chat.NewConversation(),
		// One submission per 10s with a small burst keeps form spam off
		// the inbox.
		submitLimit: rate.NewLimiter(rate.Limit(0.1), 3),
		log:         log,
	}
}

// GetPosts handles GET /api/blog/posts.
func (h *Handler) GetPosts(c *gin.Context) {
	filters := parseFilters(c)
	page, err := h.blog.GetPosts(c.Request.Context(), filters)
	if err != nil {
		h.log.Error("listing posts failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetPostBySlug handles GET /api/blog/posts/:slug.
func (h *Handler) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.blog.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error("fetching post failed", logger.String("slug", slug), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetTags handles GET /api/blog/tags.
func (h *Handler) GetTags(c *gin.Context) {
	tags, err := h.blog.GetTags(c.Request.Context())
	if err != nil {
		h.log.Error("listing tags failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tags"})
		return
	}
	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, tags)
}

// SearchPosts handles GET /api/blog/search?q=.
func (h *Handler) SearchPosts(c *gin.Context) {
	query := c.Query("q")
	results, err := h.blog.SearchPosts(c.Request.Context(), query)
	if err != nil {
		h.log.Error("search failed", logger.String("q", query), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	if results == nil {
		results = []blog.Preview{}
	}
	c.JSON(http.StatusOK, results)
}

// SubmitContact handles POST /api/contact/submit.
func (h *Handler) SubmitContact(c *gin.Context) {
	if !h.submitLimit.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "too many submissions, please try again later",
		})
		return
	}

	var form contact.FormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if err := form.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	sub, err := h.store.CreateContact(&form)
	if err != nil {
		h.log.Error("storing contact failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "submission failed"})
		return
	}

	if h.notifier != nil && h.notifier.Configured() {
		go func(s contact.Submission) {
			if err := h.notifier.Notify(&s); err != nil {
				h.log.Warn("contact notification failed", logger.Err(err))
			}
		}(*sub)
	}

	h.log.Info("contact submission stored", logger.String("id", sub.ID))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sub,
		"message": "Contact form submitted successfully",
	})
}

// chatRequest is the chat endpoint body. History is optional; when absent
// the server keeps its own transcript.
type chatRequest struct {
	Message string         `json:"message"`
	History []chat.Message `json:"history,omitempty"`
}

// Chat handles POST /api/chat. The reply is always a conversational
// string, even when the upstream call fails.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	var reply string
	if req.History != nil {
		reply = h.chatClient.Reply(c.Request.Context(), req.Message, req.History)
	} else {
		reply = h.conversation.Send(c.Request.Context(), h.chatClient, req.Message)
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseFilters reads listing filters from the query string. Unset fields
// stay zero, which the engine treats as "no constraint".
func parseFilters(c *gin.Context) *blog.Filters {
	f := &blog.Filters{
		Search:    c.Query("search"),
		Author:    c.Query("author"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if tags := c.Query("tags"); tags != "" {
		f.Tags = strings.Split(tags, ",")
	}
	if page := c.Query("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			f.Page = n
		}
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			f.Limit = n
		}
	}
	return f
}
