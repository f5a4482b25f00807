package store

import (
	"context"
	"errors"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"gorm.io/gorm"
)

// notificationListLimit caps the notification feed at the newest entries.
const notificationListLimit = 50

// NotificationInput is the payload for creating a notification.
type NotificationInput struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CreateNotification validates and inserts a notification for the caller.
func (s *Store) CreateNotification(ctx context.Context, p session.Principal, in NotificationInput) (*domain.Notification, error) {
	var errs fieldErrors
	if in.Type == "" {
		errs.add("type")
	}
	if in.Message == "" {
		errs.add("message")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	notification := domain.Notification{
		UserID:  p.UserID,
		Type:    in.Type,
		Message: in.Message,
	}
	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListNotifications returns the caller's newest 50 notifications.
func (s *Store) ListNotifications(ctx context.Context, p session.Principal) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", p.UserID).
		Order("created_at desc").
		Limit(notificationListLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flips read to true on a notification scoped by
// (id, owner). The row is fetched before the update: the MySQL driver counts
// changed rows, not matched rows, so a blind update on an already-read row
// is indistinguishable from an absent one. Marking a read notification read
// again is a no-op success.
func (s *Store) MarkNotificationRead(ctx context.Context, p session.Principal, id uint) (*domain.Notification, error) {
	var notification domain.Notification
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, p.UserID).
		First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if notification.Read {
		return &notification, nil
	}
	res := s.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, p.UserID).
		Update("read", true)
	if res.Error != nil {
		return nil, res.Error
	}
	notification.Read = true
	return &notification, nil
}

// DeleteNotification removes a notification scoped by (id, owner). Deleting
// an absent id is reported as ErrNotFound rather than silently succeeding so
// callers can tell the cases apart.
func (s *Store) DeleteNotification(ctx context.Context, p session.Principal, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, p.UserID).
		Delete(&domain.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
