package api

import (
	"net/http" // HTTP status codes

	"fintrack/internal/store"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ListIncomeHandler returns the caller's incomes, filterable by category,
// date range and limit, newest date first.
func ListIncomeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		filter, err := parseTransactionFilter(c)
		if err != nil {
			writeStoreError(c, err, "list_income")
			return
		}
		incomes, err := s.ListIncomes(c.Request.Context(), p, filter)
		if err != nil {
			writeStoreError(c, err, "list_income")
			return
		}
		c.JSON(http.StatusOK, incomes)
	}
}

// CreateIncomeHandler records an income for the caller.
func CreateIncomeHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req store.TransactionInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		income, err := s.CreateIncome(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "create_income")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   p.UserID,
			"income_id": income.ID,
			"category":  income.Category,
		}).Info("Income created")
		invalidateChart(rdb, p.UserID)
		c.JSON(http.StatusOK, income)
	}
}
