package middleware

import (
	"net/http"
	"strings"

	"hostel-backend/models"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return h
}

// Identify resolves the session token when present and puts the user in the
// context. It never rejects: handlers that require auth use RequireUser.
func Identify(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := auth.CurrentUser(token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// RequireUser aborts with 401 when Identify did not resolve a user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "error.unauthenticated",
					"message": "You must be logged in.",
				},
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Identify, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok2 := v.(*models.User); ok2 {
			return u
		}
	}
	return nil
}
