package store

import (
	"context"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput is the payload for creating an income or expense.
// Amount is a pointer so a missing field is distinguishable from zero.
type TransactionInput struct {
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Date        string           `json:"date"` // wire format 2006-01-02
}

// validate checks the payload and returns the parsed date.
func (in TransactionInput) validate() (time.Time, error) {
	var errs fieldErrors
	if in.Description == "" {
		errs.add("description")
	}
	if in.Amount == nil || in.Amount.IsNegative() {
		errs.add("amount")
	}
	if in.Category == "" {
		errs.add("category")
	}
	date := parseDate(in.Date, "date", &errs)
	return date, errs.err()
}

// TransactionFilter narrows a list query. Predicates compose conjunctively
// and are each optional.
type TransactionFilter struct {
	Category string     // exact category match
	DateFrom *time.Time // inclusive lower bound
	DateTo   *time.Time // inclusive upper bound (whole day)
	Limit    int        // result cap, 0 means unlimited
}

// scope applies the owner check, filter predicates and the deterministic
// date-descending order to a query.
func (f TransactionFilter) scope(q *gorm.DB, userID uint) *gorm.DB {
	q = q.Where("user_id = ?", userID)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.DateFrom != nil {
		q = q.Where("date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		// The upper bound covers the whole end day.
		q = q.Where("date < ?", f.DateTo.AddDate(0, 0, 1))
	}
	q = q.Order("date desc")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q
}

// CreateIncome validates the payload, lazily provisions the user and inserts
// the income row.
func (s *Store) CreateIncome(ctx context.Context, p session.Principal, in TransactionInput) (*domain.Income, error) {
	date, err := in.validate()
	if err != nil {
		return nil, err
	}
	// Two-step compound operation: ensure-user, then insert, so the foreign
	// key always resolves.
	if err := s.EnsureUser(ctx, p); err != nil {
		return nil, err
	}
	income := domain.Income{
		UserID:      p.UserID,
		Description: in.Description,
		Amount:      *in.Amount,
		Category:    in.Category,
		Date:        date,
	}
	if err := s.db.WithContext(ctx).Create(&income).Error; err != nil {
		return nil, err
	}
	return &income, nil
}

// CreateExpense validates the payload, lazily provisions the user and inserts
// the expense row.
func (s *Store) CreateExpense(ctx context.Context, p session.Principal, in TransactionInput) (*domain.Expense, error) {
	date, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.EnsureUser(ctx, p); err != nil {
		return nil, err
	}
	expense := domain.Expense{
		UserID:      p.UserID,
		Description: in.Description,
		Amount:      *in.Amount,
		Category:    in.Category,
		Date:        date,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListIncomes returns the caller's incomes matching the filter, newest date first.
func (s *Store) ListIncomes(ctx context.Context, p session.Principal, f TransactionFilter) ([]domain.Income, error) {
	incomes := []domain.Income{}
	q := f.scope(s.db.WithContext(ctx).Model(&domain.Income{}), p.UserID)
	if err := q.Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

// ListExpenses returns the caller's expenses matching the filter, newest date first.
func (s *Store) ListExpenses(ctx context.Context, p session.Principal, f TransactionFilter) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	q := f.scope(s.db.WithContext(ctx).Model(&domain.Expense{}), p.UserID)
	if err := q.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// CreateTransaction dispatches on the transaction type. The created row is
// returned as either *domain.Income or *domain.Expense.
func (s *Store) CreateTransaction(ctx context.Context, p session.Principal, txType string, in TransactionInput) (any, error) {
	switch txType {
	case domain.TypeIncome:
		return s.CreateIncome(ctx, p, in)
	case domain.TypeExpense:
		return s.CreateExpense(ctx, p, in)
	default:
		return nil, &ValidationError{Fields: []string{"type"}}
	}
}
