package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/internal/model"
)

// SessionResolver returns the signed-in account, or nil for a guest.
type SessionResolver interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

// RequireSession rejects guests with 401 and stores the account id under
// "user_id" for the handlers and rate limiters that follow.
func RequireSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolver.CurrentUser(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read session"})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}
