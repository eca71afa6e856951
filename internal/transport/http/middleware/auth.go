package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agents/pkg/auth"
	"github.com/iamasit07/connect4-agents/pkg/httputil"
)

const ClaimsKey = "claims"

// AuthMiddleware validates the bearer token (or auth cookie) and requires
// the given scope. The claims are stored on the context under ClaimsKey.
func AuthMiddleware(secret, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateAccessToken(secret, tokenString)
		if err != nil {
			log.Printf("[AUTH] Rejected token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if !claims.HasScope(scope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Missing scope " + scope})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClientFromContext returns the authenticated client name, or "" when the
// route is not behind AuthMiddleware.
func ClientFromContext(c *gin.Context) string {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims.Client
		}
	}
	return ""
}
