package api

import (
	"context"
	"errors"
	"net/http" // HTTP status codes

	"fintrack/internal/cache"
	"fintrack/internal/middleware"
	"fintrack/internal/session"
	"fintrack/internal/store"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// principal fetches the authenticated principal, replying 401 when the auth
// middleware did not run or failed to attach one.
func principal(c *gin.Context) (session.Principal, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return p, ok
}

// writeStoreError maps a store-layer error to its HTTP response. Validation
// failures are always 400 and name the offending fields; not-found and
// not-owned are collapsed into a single 404; anything else is logged
// server-side and surfaced as an opaque 500.
func writeStoreError(c *gin.Context, err error, op string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, store.ErrNoActiveBudget):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active budget found"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logrus.WithFields(logrus.Fields{
			"operation": op,
			"error":     err.Error(),
		}).Error("Store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// invalidateChart drops the cached chart series for a user after a mutation
// that changes the monthly sums.
func invalidateChart(rdb *redis.Client, userID uint) {
	if rdb == nil {
		return
	}
	_ = cache.Delete(context.Background(), rdb, cache.ChartKey(userID))
}
