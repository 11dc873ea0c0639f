package middleware

import (
	"net/http"
	"strings"

	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

const SessionIDKey = "bookingSessionID"

// SessionAuthMiddleware validates the widget session token and pins it to
// the salon in the route, so a token minted for one salon cannot drive a
// booking at another.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, salonID, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}
		if salonID != c.Param("salonId") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session token does not match salon"})
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
