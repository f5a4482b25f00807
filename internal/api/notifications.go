package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"fintrack/internal/store"

	"github.com/gin-gonic/gin" // Gin web framework
)

// notificationID parses the :id path parameter.
func notificationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// ListNotificationsHandler returns the caller's newest 50 notifications.
func ListNotificationsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		notifications, err := s.ListNotifications(c.Request.Context(), p)
		if err != nil {
			writeStoreError(c, err, "list_notifications")
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// CreateNotificationHandler creates a notification for the caller.
func CreateNotificationHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req store.NotificationInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		notification, err := s.CreateNotification(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "create_notification")
			return
		}
		c.JSON(http.StatusOK, notification)
	}
}

// MarkNotificationReadHandler marks one of the caller's notifications read.
func MarkNotificationReadHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		id, ok := notificationID(c)
		if !ok {
			return
		}
		notification, err := s.MarkNotificationRead(c.Request.Context(), p, id)
		if err != nil {
			writeStoreError(c, err, "mark_notification_read")
			return
		}
		c.JSON(http.StatusOK, notification)
	}
}

// DeleteNotificationHandler deletes one of the caller's notifications.
func DeleteNotificationHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		id, ok := notificationID(c)
		if !ok {
			return
		}
		if err := s.DeleteNotification(c.Request.Context(), p, id); err != nil {
			writeStoreError(c, err, "delete_notification")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
