package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shorturl-be/internal/entities"
	"shorturl-be/internal/jwt"
)

const (
	// TokenCookieName is the cookie carrying the session token.
	TokenCookieName = "token"

	identityKey = "identity"
	userIDKey   = "user_id"
)

// AuthMiddleware rejects requests without a valid session token and stores the
// decoded identity in the context. The token is read from the session cookie,
// falling back to an "Authorization: Bearer" header for API clients.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token missing",
			})
			return
		}

		identity, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Token invalid or expired",
			})
			return
		}

		c.Set(identityKey, *identity)
		c.Set(userIDKey, identity.UserID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookieName); err == nil && token != "" {
		return token
	}

	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetIdentity returns the identity stored by AuthMiddleware
func GetIdentity(c *gin.Context) (entities.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entities.Identity{}, false
	}
	identity, ok := value.(entities.Identity)
	return identity, ok
}
