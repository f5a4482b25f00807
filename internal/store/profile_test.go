package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetOrCreateProfileAppliesDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	profile, err := s.GetOrCreateProfile(ctx, alice())
	require.NoError(t, err)
	require.Equal(t, "USD", profile.Currency)
	require.Equal(t, "en", profile.Language)
	require.Equal(t, "light", profile.Theme)
	require.Equal(t, "MM/DD/YYYY", profile.DateFormat)
	require.True(t, profile.Notifications)

	// A second fetch returns the same row instead of creating another.
	again, err := s.GetOrCreateProfile(ctx, alice())
	require.NoError(t, err)
	require.Equal(t, profile.ID, again.ID)
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	theme := "dark"
	notifications := false
	updated, err := s.UpdateProfile(ctx, alice(), ProfileInput{Theme: &theme, Notifications: &notifications})
	require.NoError(t, err)
	require.Equal(t, "dark", updated.Theme)
	require.False(t, updated.Notifications)
	// Untouched fields keep their defaults.
	require.Equal(t, "USD", updated.Currency)
	require.Equal(t, "en", updated.Language)
}

func TestProfilesAreIsolatedBetweenUsers(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	theme := "dark"
	_, err := s.UpdateProfile(ctx, alice(), ProfileInput{Theme: &theme})
	require.NoError(t, err)

	bobProfile, err := s.GetOrCreateProfile(ctx, bob())
	require.NoError(t, err)
	require.Equal(t, "light", bobProfile.Theme)
}
