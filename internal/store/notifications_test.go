package store

import (
	"context"
	"fmt"
	"testing"

	"fintrack/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCreateNotificationValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateNotification(ctx, alice(), NotificationInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.ElementsMatch(t, []string{"type", "message"}, verr.Fields)
}

func TestListNotificationsCapsAtFifty(t *testing.T) {
	s, gdb := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 55; i++ {
		require.NoError(t, gdb.Create(&domain.Notification{
			UserID:  alice().UserID,
			Type:    "budget_alert",
			Message: fmt.Sprintf("message %d", i),
		}).Error)
	}

	notifications, err := s.ListNotifications(ctx, alice())
	require.NoError(t, err)
	require.Len(t, notifications, 50)
}

func TestMarkNotificationRead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateNotification(ctx, alice(), NotificationInput{Type: "goal", Message: "Goal reached"})
	require.NoError(t, err)
	require.False(t, created.Read)

	updated, err := s.MarkNotificationRead(ctx, alice(), created.ID)
	require.NoError(t, err)
	require.True(t, updated.Read)
}

func TestMarkNotificationReadIsRepeatable(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateNotification(ctx, alice(), NotificationInput{Type: "goal", Message: "Goal reached"})
	require.NoError(t, err)

	// Marking an already-read notification succeeds again instead of being
	// mistaken for an absent row.
	for i := 0; i < 2; i++ {
		updated, err := s.MarkNotificationRead(ctx, alice(), created.ID)
		require.NoError(t, err)
		require.True(t, updated.Read)
	}
}

func TestMarkNotificationReadNotOwned(t *testing.T) {
	s, gdb := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateNotification(ctx, alice(), NotificationInput{Type: "goal", Message: "Goal reached"})
	require.NoError(t, err)

	// Bob cannot mark Alice's notification; the row stays untouched.
	_, err = s.MarkNotificationRead(ctx, bob(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var row domain.Notification
	require.NoError(t, gdb.First(&row, created.ID).Error)
	require.False(t, row.Read)
}

func TestDeleteNotificationNotOwned(t *testing.T) {
	s, gdb := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateNotification(ctx, alice(), NotificationInput{Type: "goal", Message: "Goal reached"})
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteNotification(ctx, bob(), created.ID), ErrNotFound)

	var count int64
	require.NoError(t, gdb.Model(&domain.Notification{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteNotificationAbsentSignalsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.DeleteNotification(ctx, alice(), 9999), ErrNotFound)
}

func TestDeleteNotification(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateNotification(ctx, alice(), NotificationInput{Type: "goal", Message: "Goal reached"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteNotification(ctx, alice(), created.ID))

	notifications, err := s.ListNotifications(ctx, alice())
	require.NoError(t, err)
	require.Empty(t, notifications)
}
