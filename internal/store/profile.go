package store

import (
	"context"

	"fintrack/internal/domain"
	"fintrack/internal/session"
)

// ProfileInput is the patch payload for updating profile settings.
// Pointer fields distinguish "leave unchanged" from explicit values.
type ProfileInput struct {
	Currency      *string `json:"currency"`
	Language      *string `json:"language"`
	Theme         *string `json:"theme"`
	DateFormat    *string `json:"dateFormat"`
	Notifications *bool   `json:"notifications"`
}

// GetOrCreateProfile returns the caller's profile, creating it with fixed
// defaults on first access.
func (s *Store) GetOrCreateProfile(ctx context.Context, p session.Principal) (*domain.Profile, error) {
	if err := s.EnsureUser(ctx, p); err != nil {
		return nil, err
	}
	profile := domain.Profile{UserID: p.UserID}
	err := s.db.WithContext(ctx).
		Where(domain.Profile{UserID: p.UserID}).
		Attrs(domain.Profile{
			Currency:      "USD",
			Language:      "en",
			Theme:         "light",
			DateFormat:    "MM/DD/YYYY",
			Notifications: true,
		}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the patch to the caller's profile, creating it first
// if it does not exist yet.
func (s *Store) UpdateProfile(ctx context.Context, p session.Principal, in ProfileInput) (*domain.Profile, error) {
	profile, err := s.GetOrCreateProfile(ctx, p)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Currency != nil {
		updates["currency"] = *in.Currency
	}
	if in.Language != nil {
		updates["language"] = *in.Language
	}
	if in.Theme != nil {
		updates["theme"] = *in.Theme
	}
	if in.DateFormat != nil {
		updates["date_format"] = *in.DateFormat
	}
	if in.Notifications != nil {
		updates["notifications"] = *in.Notifications
	}
	if len(updates) == 0 {
		return profile, nil
	}
	res := s.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("user_id = ?", p.UserID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	return s.GetOrCreateProfile(ctx, p)
}
