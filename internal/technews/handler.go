package technews

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shubhgupta/shubh-dev/internal/logger"
)

// SourceName tags responses served from the upstream feed; cache hits are
// tagged "cache" instead.
const SourceName = "gnews"

// Handler serves GET /api/tech-news. The cache is injected so its
// lifecycle (and test resettability) is explicit.
type Handler struct {
	apiKey  string
	cache   *Cache
	fetcher Fetcher
	log     logger.Logger
	now     func() time.Time
}

// NewHandler creates a tech news handler. An empty apiKey makes every
// request fail with a configuration error before any upstream call.
func NewHandler(apiKey string, cache *Cache, fetcher Fetcher, log logger.Logger) *Handler {
	return &Handler{
		apiKey:  apiKey,
		cache:   cache,
		fetcher: fetcher,
		log:     log,
		now:     time.Now,
	}
}

// Serve handles one request. Every failure path produces a well-formed
// JSON error; nothing escapes as a raw panic.
func (h *Handler) Serve(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusOK)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			h.log.Error("tech-news handler panic", logger.String("panic", fmt.Sprint(r)))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "server error",
				"detail": fmt.Sprint(r),
			})
		}
	}()

	now := h.now()
	if articles, ok := h.cache.Get(now); ok {
		c.JSON(http.StatusOK, gin.H{"source": "cache", "articles": articles})
		return
	}

	if h.apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing GNEWS_API_KEY"})
		return
	}

	articles, err := h.fetcher.Fetch(c.Request.Context())
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			h.log.Warn("gnews upstream error",
				logger.Int("status", upstream.Status))
			c.JSON(upstream.Status, gin.H{
				"error":  "GNews fetch failed",
				"detail": upstream.Body,
			})
			return
		}
		h.log.Error("tech-news fetch failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "server error",
			"detail": err.Error(),
		})
		return
	}

	h.cache.Set(now, articles)
	h.log.Info("tech-news cache refreshed", logger.Int("articles", len(articles)))
	c.JSON(http.StatusOK, gin.H{"source": SourceName, "articles": articles})
}
