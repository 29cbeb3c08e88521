package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/auth"
)

const (
	ctxUserID  = "auth.userID"
	ctxIsAdmin = "auth.isAdmin"
)

// RequireAuth validates the bearer session token and stashes the caller's
// identity on the request context.
func RequireAuth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token lacks the admin claim. It must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's user ID, or zero when the request
// is unauthenticated.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(ctxUserID)
	v, _ := id.(int64)
	return v
}

// IsAdmin reports whether the authenticated caller holds the admin claim.
func IsAdmin(c *gin.Context) bool {
	flag, _ := c.Get(ctxIsAdmin)
	v, _ := flag.(bool)
	return v
}
