package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"

	"fintrack/internal/store"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// TransactionRequest is the body of POST /api/transactions.
type TransactionRequest struct {
	Type string `json:"type"` // "income" or "expense"
	store.TransactionInput
}

// parseTransactionFilter reads the optional category/startDate/endDate/limit
// query parameters. Malformed values are reported as a ValidationError rather
// than silently ignored.
func parseTransactionFilter(c *gin.Context) (store.TransactionFilter, error) {
	var f store.TransactionFilter
	var fields []string
	f.Category = c.Query("category")
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(store.DateLayout, v)
		if err != nil {
			fields = append(fields, "startDate")
		} else {
			f.DateFrom = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(store.DateLayout, v)
		if err != nil {
			fields = append(fields, "endDate")
		} else {
			f.DateTo = &t
		}
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fields = append(fields, "limit")
		} else {
			f.Limit = n
		}
	}
	if len(fields) > 0 {
		return f, &store.ValidationError{Fields: fields}
	}
	return f, nil
}

// CreateTransactionHandler creates an income or expense depending on the
// request's type field.
func CreateTransactionHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := s.CreateTransaction(c.Request.Context(), p, req.Type, req.TransactionInput)
		if err != nil {
			writeStoreError(c, err, "create_transaction")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": p.UserID,
			"type":    req.Type,
		}).Info("Transaction created")
		invalidateChart(rdb, p.UserID)
		c.JSON(http.StatusOK, created)
	}
}
