package util

import "github.com/gin-gonic/gin"

const userIDContextKey = "userID"

// SetUserID stores the resolved session user on the request context.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDContextKey, userID)
}

// UserID returns the authenticated user id, or "" outside an authenticated
// route.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
