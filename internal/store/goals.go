package store

import (
	"context"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"github.com/shopspring/decimal"
)

// GoalInput is the payload for creating a savings goal.
type GoalInput struct {
	Name          string           `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"` // optional, defaults to 0
	StartDate     string           `json:"startDate"`
	TargetDate    string           `json:"targetDate"`
	Category      string           `json:"category"`
	Priority      string           `json:"priority"` // optional, defaults to medium
	Notes         string           `json:"notes"`    // optional
}

// CreateGoal validates the payload and inserts the goal with its defaults
// applied (currentAmount 0, priority medium).
func (s *Store) CreateGoal(ctx context.Context, p session.Principal, in GoalInput) (*domain.Goal, error) {
	var errs fieldErrors
	if in.Name == "" {
		errs.add("name")
	}
	if in.TargetAmount == nil || in.TargetAmount.IsNegative() {
		errs.add("targetAmount")
	}
	if in.Category == "" {
		errs.add("category")
	}
	startDate := parseDate(in.StartDate, "startDate", &errs)
	targetDate := parseDate(in.TargetDate, "targetDate", &errs)

	priority := in.Priority
	switch priority {
	case "":
		priority = domain.PriorityMedium
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		errs.add("priority")
	}
	current := decimal.Zero
	if in.CurrentAmount != nil {
		if in.CurrentAmount.IsNegative() {
			errs.add("currentAmount")
		} else {
			current = *in.CurrentAmount
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	goal := domain.Goal{
		UserID:        p.UserID,
		Name:          in.Name,
		TargetAmount:  *in.TargetAmount,
		CurrentAmount: current,
		StartDate:     startDate,
		TargetDate:    targetDate,
		Category:      in.Category,
		Priority:      priority,
		Notes:         in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListGoals returns the caller's goals ordered by target date ascending.
func (s *Store) ListGoals(ctx context.Context, p session.Principal) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", p.UserID).
		Order("target_date asc").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}
