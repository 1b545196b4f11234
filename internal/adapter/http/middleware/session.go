package middleware

import (
	"net/http"

	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/gin-gonic/gin"
)

// SessionSource reports the current staff session. Satisfied by *store.Store.
type SessionSource interface {
	Session() entity.Session
}

// RequireSession guards the protected pages: unauthenticated page loads go
// back to the landing route.
func RequireSession(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Session().IsAuthenticated {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
