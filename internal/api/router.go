// Package api wires the HTTP surface: blog content routes, contact form,
// the tech news proxy, the chat endpoint, and the admin dashboard.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/shubhgupta/shubh-dev/internal/logger"
	"github.com/shubhgupta/shubh-dev/internal/store"
	"github.com/shubhgupta/shubh-dev/internal/technews"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Handler  *Handler
	Admin    *Admin
	TechNews *technews.Handler
	Store    *store.Store
	Log      logger.Logger
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(visitorTracking(d.Store, d.Admin.Salt(), d.Log))

	r.GET("/healthz", d.Handler.Health)

	blogGroup := r.Group("/api/blog")
	{
		blogGroup.GET("/posts", d.Handler.GetPosts)
		blogGroup.GET("/posts/:slug", d.Handler.GetPostBySlug)
		blogGroup.GET("/tags", d.Handler.GetTags)
		blogGroup.GET("/search", d.Handler.SearchPosts)
	}

	r.POST("/api/contact/submit", d.Handler.SubmitContact)
	r.POST("/api/chat", d.Handler.Chat)

	r.GET("/api/tech-news", d.TechNews.Serve)
	r.OPTIONS("/api/tech-news", d.TechNews.Serve)

	r.POST("/admin/login", d.Admin.Login)
	r.POST("/admin/logout", d.Admin.Logout)

	adminGroup := r.Group("/")
	adminGroup.Use(d.Admin.authMiddleware())
	{
		adminGroup.GET("/admin/stats", d.Admin.Stats)
		adminGroup.POST("/admin/privacy/cleanup", d.Admin.CleanupVisitors)
		adminGroup.GET("/api/contact/submissions", d.Admin.ListSubmissions)
		adminGroup.PATCH("/api/contact/submissions/:id/status", d.Admin.UpdateSubmissionStatus)
	}

	return r
}
