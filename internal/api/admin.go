package api

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shubhgupta/shubh-dev/internal/logger"
	"github.com/shubhgupta/shubh-dev/internal/store"
)

const adminCookie = "admin_token"

// Admin guards the submissions dashboard. The session token and the IP
// hashing salt are generated fresh per process.
type Admin struct {
	username string
	password string
	token    string
	salt     string
	store    *store.Store
	log      logger.Logger
}

// NewAdmin creates the admin surface. Empty credentials disable login.
func NewAdmin(username, password string, st *store.Store, log logger.Logger) *Admin {
	return &Admin{
		username: username,
		password: password,
		token:    randomToken(),
		salt:     randomToken(),
		store:    st,
		log:      log,
	}
}

func randomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate admin token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// Salt exposes the per-process salt for visitor IP hashing.
func (a *Admin) Salt() string { return a.salt }

// authMiddleware rejects requests without a valid session cookie.
func (a *Admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /admin/login.
func (a *Admin) Login(c *gin.Context) {
	if a.username == "" || a.password == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.password)) == 1
	if !userOK || !passOK {
		a.log.Warn("failed admin login", logger.String("from", hashIP(c.ClientIP(), a.salt)))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	// 24 hour session.
	c.SetCookie(adminCookie, a.token, 3600*24, "/", "", false, true)
	a.log.Info("admin login", logger.String("from", hashIP(c.ClientIP(), a.salt)))
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// Logout handles POST /admin/logout.
func (a *Admin) Logout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Stats handles GET /admin/stats: visitor metrics plus submission counts.
func (a *Admin) Stats(c *gin.Context) {
	stats, err := a.store.GetVisitorStats()
	if err != nil {
		a.log.Error("loading visitor stats failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	subs, err := a.store.ListContacts()
	if err != nil {
		a.log.Error("loading submissions failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	pending := 0
	for _, s := range subs {
		if s.Status == "pending" {
			pending++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"visitors":            stats,
		"total_submissions":   len(subs),
		"pending_submissions": pending,
	})
}

// ListSubmissions handles GET /api/contact/submissions.
func (a *Admin) ListSubmissions(c *gin.Context) {
	subs, err := a.store.ListContacts()
	if err != nil {
		a.log.Error("listing submissions failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateSubmissionStatus handles PATCH /api/contact/submissions/:id/status.
// Only the read and replied transitions are allowed; submissions are born
// pending.
func (a *Admin) UpdateSubmissionStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Status != "read" && req.Status != "replied" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be read or replied"})
		return
	}

	id := c.Param("id")
	if err := a.store.UpdateContactStatus(id, req.Status); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		a.log.Error("updating submission failed", logger.String("id", id), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// CleanupVisitors handles POST /admin/privacy/cleanup: drops visitor
// records older than the retention window.
func (a *Admin) CleanupVisitors(c *gin.Context) {
	n, err := a.store.CleanupVisitors()
	if err != nil {
		a.log.Error("visitor cleanup failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	a.log.Info("visitor cleanup", logger.Int64("removed", n))
	c.JSON(http.StatusOK, gin.H{"removed": n})
}
