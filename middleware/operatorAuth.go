package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	salonRepo "glowdesk/database/repository/salon"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const OperatorUIDKey = "operatorUID"

// OperatorAuthMiddleware guards dashboard endpoints. Operators authenticate
// with a Firebase ID token when Firebase is configured, or with the salon's
// dashboard key checked against its bcrypt hash.
func OperatorAuthMiddleware(salons salonRepo.SalonRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			if utils.AuthClient == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token auth is not enabled"})
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			token, err := utils.AuthClient.VerifyIDToken(ctx, tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid operator token"})
				return
			}
			c.Set(OperatorUIDKey, token.UID)
			c.Next()
			return
		}

		key := c.GetHeader("X-Dashboard-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing operator credentials"})
			return
		}
		salon, err := salons.GetByID(c.Param("salonId"))
		if err != nil || salon == nil || salon.DashboardKeyHash == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown salon"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(salon.DashboardKeyHash), []byte(key)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid dashboard key"})
			return
		}
		c.Next()
	}
}
