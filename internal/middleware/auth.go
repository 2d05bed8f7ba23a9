package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"sahyogjeevan/internal/logger"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token for the SPA.
// The mobile client sends the same token as a bearer header instead.
const SessionCookieName = "sahyog_session"

const (
	ctxUserIDKey       = "userID"
	ctxRoleKey         = "role"
	ctxSessionTokenKey = "sessionToken"
)

// SessionMiddleware resolves the session token (cookie or bearer header)
// against the store and, when valid, attaches userID/role to the request.
// It never aborts: protected routes layer RequireAuth on top.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			// Unknown or expired token behaves like no token at all.
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, sess.UserID)
		c.Set(ctxRoleKey, sess.Role)
		c.Set(ctxSessionTokenKey, token)

		ctx := logger.WithUserID(c.Request.Context(), fmt.Sprintf("%d", sess.UserID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth rejects requests with no resolved session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ctxUserIDKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

// RequireRoles rejects sessions whose role is outside the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			if roleStr, isString := roleVal.(string); isString {
				role = models.UserRole(roleStr)
			} else {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role"})
				return
			}
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}

// ExtractToken pulls the session token from the cookie or the
// Authorization header.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID extracts the authenticated user's ID, 0 when absent.
func GetUserID(c *gin.Context) uint {
	val, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0
	}
	id, ok := val.(uint)
	if !ok {
		return 0
	}
	return id
}

// GetSessionToken returns the token the current request authenticated with.
func GetSessionToken(c *gin.Context) string {
	val, exists := c.Get(ctxSessionTokenKey)
	if !exists {
		return ""
	}
	token, _ := val.(string)
	return token
}
