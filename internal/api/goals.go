package api

import (
	"net/http" // HTTP status codes

	"fintrack/internal/store"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListGoalsHandler returns the caller's goals ordered by target date.
func ListGoalsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		goals, err := s.ListGoals(c.Request.Context(), p)
		if err != nil {
			writeStoreError(c, err, "list_goals")
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// CreateGoalHandler creates a savings goal for the caller.
func CreateGoalHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req store.GoalInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		goal, err := s.CreateGoal(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "create_goal")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  p.UserID,
			"goal_id":  goal.ID,
			"priority": goal.Priority,
		}).Info("Goal created")
		c.JSON(http.StatusOK, goal)
	}
}
