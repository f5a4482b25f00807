package middleware

import (
	"net/http"

	"fintrack/internal/session"

	"github.com/gin-gonic/gin"
)

// LoginPath is where anonymous page requests are redirected.
const LoginPath = "/auth/login"

// hasSession reports whether the request carries a valid session token.
func hasSession(c *gin.Context, secret string) bool {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" {
		return false
	}
	_, err := session.Parse(tokenStr, secret)
	return err == nil
}

// RequirePage gates an application page behind an authenticated session,
// redirecting anonymous visitors to the login page.
func RequirePage(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hasSession(c, secret) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated bounces already-authenticated sessions away from the
// login and register pages.
func RedirectAuthenticated(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hasSession(c, secret) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
