package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"fintrack/internal/store"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// budgetID parses the :budgetId path parameter.
func budgetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("budgetId"), 10, 64)
	if err != nil {
		// An unparseable id can never match an owned budget.
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// CreateBudgetHandler opens a budget period for the caller.
func CreateBudgetHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req store.BudgetInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		budget, err := s.CreateBudget(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "create_budget")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   p.UserID,
			"budget_id": budget.ID,
		}).Info("Budget created")
		c.JSON(http.StatusOK, budget)
	}
}

// AddBudgetCategoryHandler allocates a category cap on a specific budget.
func AddBudgetCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		id, ok := budgetID(c)
		if !ok {
			return
		}
		var req store.BudgetCategoryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category, err := s.AddBudgetCategory(c.Request.Context(), p, id, req)
		if err != nil {
			writeStoreError(c, err, "add_budget_category")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// AddBudgetExpenseHandler records an expense against a specific budget.
func AddBudgetExpenseHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		id, ok := budgetID(c)
		if !ok {
			return
		}
		var req store.TransactionInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		expense, err := s.AddExpenseToBudget(c.Request.Context(), p, id, req)
		if err != nil {
			writeStoreError(c, err, "add_budget_expense")
			return
		}
		invalidateChart(rdb, p.UserID)
		c.JSON(http.StatusOK, expense)
	}
}

// AddActiveBudgetCategoryHandler allocates a category cap on the caller's
// active budget, failing when no budget is currently active.
func AddActiveBudgetCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req store.BudgetCategoryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category, err := s.AddCategoryToActiveBudget(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "add_active_budget_category")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
