package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relic-gallery-service/internal/core/domain"
	"relic-gallery-service/internal/core/services"
)

// SessionCookie is the cookie carrying the signed admin session token.
const SessionCookie = "gallery_session"

// AdminRequired rejects requests that do not carry a valid admin session
// cookie. The verified session is stored on the context for handlers.
func AdminRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		session, err := auth.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		c.Set("admin_id", session.AdminID)
		c.Set("admin_username", session.Username)
		c.Next()
	}
}
