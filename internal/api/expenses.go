package api

import (
	"net/http" // HTTP status codes

	"fintrack/internal/store"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ListExpensesHandler returns the caller's expenses, filterable by category,
// date range and limit, newest date first.
func ListExpensesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		filter, err := parseTransactionFilter(c)
		if err != nil {
			writeStoreError(c, err, "list_expenses")
			return
		}
		expenses, err := s.ListExpenses(c.Request.Context(), p, filter)
		if err != nil {
			writeStoreError(c, err, "list_expenses")
			return
		}
		c.JSON(http.StatusOK, expenses)
	}
}

// CreateExpenseHandler records an expense for the caller.
func CreateExpenseHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
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
		expense, err := s.CreateExpense(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "create_expense")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    p.UserID,
			"expense_id": expense.ID,
			"category":   expense.Category,
		}).Info("Expense created")
		invalidateChart(rdb, p.UserID)
		c.JSON(http.StatusOK, expense)
	}
}
