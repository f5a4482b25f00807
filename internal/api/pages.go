package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler is the placeholder endpoint behind the gated application pages.
// The actual pages are rendered by the client app; the server only enforces
// the session gate and acknowledges the route.
func PageHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}
