package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"fintrack/internal/session"

	"github.com/gin-gonic/gin" // Gin web framework
)

// principalKey is the gin context key the authenticated principal is stored under.
const principalKey = "principal"

// tokenFromRequest extracts the session token from the Authorization header,
// falling back to the session cookie set by the login handler.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth validates the session token and stores the principal in the
// context. Anonymous requests are rejected before any handler touches the store.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := session.Parse(tokenStr, secret)
		if err != nil {
			// Invalid or expired token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(principalKey, claims.Principal()) // Store principal in context
		c.Next()
	}
}

// CurrentPrincipal returns the principal stored by RequireAuth.
func CurrentPrincipal(c *gin.Context) (session.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return session.Principal{}, false
	}
	p, ok := v.(session.Principal)
	return p, ok
}
