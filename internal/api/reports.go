package api

import (
	"net/http" // HTTP status codes

	"fintrack/internal/cache"
	"fintrack/internal/report"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// ChartDataHandler serves the 6-month income/expense series for the caller.
// The computed series is cached per user in Redis and invalidated whenever a
// transaction is created.
func ChartDataHandler(engine *report.Engine, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		cacheKey := cache.ChartKey(p.UserID)
		if rdb != nil {
			var cached []report.MonthPoint
			if found, err := cache.Get(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		points, err := engine.Monthly(ctx, p, report.DefaultMonthsBack)
		if err != nil {
			writeStoreError(c, err, "chart_data")
			return
		}
		if rdb != nil {
			_ = cache.Set(ctx, rdb, cacheKey, points, cache.ChartTTL)
		}
		c.JSON(http.StatusOK, points)
	}
}
