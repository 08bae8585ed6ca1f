package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodorder/internal/token"
)

const claimsKey = "claims"

// AuthRequired verifies the Bearer token and stores its claims in the request
// context. Handlers behind it can assume CurrentClaims returns non-nil.
func AuthRequired(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func CurrentClaims(c *gin.Context) *token.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*token.Claims)
	return claims
}
