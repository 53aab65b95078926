package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// JWTAuthMiddleware rejects requests without a live bearer token. Tokens
// revoked by logout are refused until their natural expiry. The error
// message doubles as the client's session-expired signal.
func JWTAuthMiddleware(revoked mem.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Session expired. Please log in again.")
			c.Abort()
			return
		}

		if revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Session expired. Please log in again.")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("token", tokenString)
		c.Next()
	}
}
