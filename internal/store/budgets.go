package store

import (
	"context"
	"errors"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetInput is the payload for opening a budget period.
type BudgetInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"` // optional, empty means the budget stays active
}

// BudgetCategoryInput is the payload for allocating a category cap on a budget.
type BudgetCategoryInput struct {
	Name   string           `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
}

func (in BudgetCategoryInput) validate() error {
	var errs fieldErrors
	if in.Name == "" {
		errs.add("name")
	}
	if in.Amount == nil || in.Amount.IsNegative() {
		errs.add("amount")
	}
	return errs.err()
}

// CreateBudget inserts a budget period for the caller.
func (s *Store) CreateBudget(ctx context.Context, p session.Principal, in BudgetInput) (*domain.Budget, error) {
	var errs fieldErrors
	startDate := parseDate(in.StartDate, "startDate", &errs)
	budget := domain.Budget{UserID: p.UserID, StartDate: startDate}
	if in.EndDate != "" {
		endDate := parseDate(in.EndDate, "endDate", &errs)
		budget.EndDate = &endDate
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

// ActiveBudget returns the caller's currently active budget: nil end date,
// most recent start date first. With several active rows the most recent
// wins silently; nothing enforces a single-active constraint.
func (s *Store) ActiveBudget(ctx context.Context, p session.Principal) (*domain.Budget, error) {
	var budget domain.Budget
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND end_date IS NULL", p.UserID).
		Order("start_date desc").
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveBudget
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// BudgetByID fetches a budget scoped by (id, owner) in one query, so a budget
// owned by someone else is indistinguishable from an absent one.
func (s *Store) BudgetByID(ctx context.Context, p session.Principal, budgetID uint) (*domain.Budget, error) {
	var budget domain.Budget
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID, p.UserID).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// AddBudgetCategory allocates a category cap on one of the caller's budgets.
// Ownership of the category is enforced through the parent budget lookup.
func (s *Store) AddBudgetCategory(ctx context.Context, p session.Principal, budgetID uint, in BudgetCategoryInput) (*domain.BudgetCategory, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	budget, err := s.BudgetByID(ctx, p, budgetID)
	if err != nil {
		return nil, err
	}
	category := domain.BudgetCategory{
		BudgetID: budget.ID,
		Name:     in.Name,
		Amount:   *in.Amount,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// AddCategoryToActiveBudget allocates a category cap on the caller's active
// budget, failing with ErrNoActiveBudget when every budget has an end date.
func (s *Store) AddCategoryToActiveBudget(ctx context.Context, p session.Principal, in BudgetCategoryInput) (*domain.BudgetCategory, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	budget, err := s.ActiveBudget(ctx, p)
	if err != nil {
		return nil, err
	}
	category := domain.BudgetCategory{
		BudgetID: budget.ID,
		Name:     in.Name,
		Amount:   *in.Amount,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// AddExpenseToBudget records an expense against one of the caller's budgets.
// The budget is only an ownership gate; the row lands in the expenses table
// like any other expense.
func (s *Store) AddExpenseToBudget(ctx context.Context, p session.Principal, budgetID uint, in TransactionInput) (*domain.Expense, error) {
	if _, err := s.BudgetByID(ctx, p, budgetID); err != nil {
		return nil, err
	}
	return s.CreateExpense(ctx, p, in)
}
