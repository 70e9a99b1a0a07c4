package middleware

import (
	"strings"

	"career_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TokenResolver maps a bearer token to a user id. ok=false means the
// request is anonymous, whatever the reason.
type TokenResolver interface {
	Resolve(token string) (string, bool)
}

// AuthMiddleware guards a route group behind bearer authentication. The
// token comes from the Authorization header only; a missing, unknown, or
// expired token gets the one generic 401 envelope.
func AuthMiddleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		userID, ok := resolver.Resolve(token)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUserID(c, userID)
		c.Next()
	}
}
