package store

import (
	"context"
	"testing"

	"fintrack/internal/domain"

	"github.com/stretchr/testify/require"
)

func goalInput(name string) GoalInput {
	return GoalInput{
		Name:         name,
		TargetAmount: amount("5000"),
		StartDate:    "2024-01-01",
		TargetDate:   "2024-12-31",
		Category:     "Savings",
	}
}

func TestCreateGoalAppliesDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateGoal(ctx, alice(), goalInput("Emergency fund"))
	require.NoError(t, err)
	second, err := s.CreateGoal(ctx, alice(), goalInput("Vacation"))
	require.NoError(t, err)

	// Priority unset defaults to medium, currentAmount unset defaults to 0.
	require.Equal(t, domain.PriorityMedium, first.Priority)
	require.Equal(t, domain.PriorityMedium, second.Priority)
	require.True(t, first.CurrentAmount.IsZero())
	require.True(t, second.CurrentAmount.IsZero())
}

func TestCreateGoalRejectsUnknownPriority(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := goalInput("Emergency fund")
	in.Priority = "urgent"
	_, err := s.CreateGoal(ctx, alice(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"priority"}, verr.Fields)
}

func TestCreateGoalValidationReportsFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateGoal(ctx, alice(), GoalInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.ElementsMatch(t, []string{"name", "targetAmount", "category", "startDate", "targetDate"}, verr.Fields)
}

func TestListGoalsOrderedByTargetDate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	later := goalInput("Later")
	later.TargetDate = "2025-06-30"
	sooner := goalInput("Sooner")
	sooner.TargetDate = "2024-06-30"

	_, err := s.CreateGoal(ctx, alice(), later)
	require.NoError(t, err)
	_, err = s.CreateGoal(ctx, alice(), sooner)
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx, alice())
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, "Sooner", goals[0].Name)
	require.Equal(t, "Later", goals[1].Name)
}

func TestGoalsAreIsolatedBetweenUsers(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateGoal(ctx, alice(), goalInput("Alice's goal"))
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx, bob())
	require.NoError(t, err)
	require.Empty(t, goals)
}
