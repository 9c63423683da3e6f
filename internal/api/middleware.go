package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shubhgupta/shubh-dev/internal/logger"
	"github.com/shubhgupta/shubh-dev/internal/store"
)

// corsMiddleware permits browser calls from any origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// hashIP hashes an IP with a per-process salt. Raw IPs are never stored.
func hashIP(ip, salt string) string {
	hash := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(hash[:])[:16]
}

// visitorTracking records page views with hashed IPs. Admin and health
// paths are skipped, and the Do Not Track header is respected.
func visitorTracking(st *store.Store, salt string, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/admin") ||
			strings.HasPrefix(path, "/healthz") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed := hashIP(c.ClientIP(), salt)
		ua := c.GetHeader("User-Agent")
		go func() {
			if err := st.RecordVisitor(hashed, ua, path); err != nil {
				log.Warn("recording visitor failed", logger.Err(err))
			}
		}()
		c.Next()
	}
}
