package report

import (
	"context"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultMonthsBack is the chart window served by /api/reports/chart-data.
const DefaultMonthsBack = 6

// MonthPoint is one month of the chart series. Amounts are exact decimals;
// months with no records carry zero, never a missing entry.
type MonthPoint struct {
	Label    string          `json:"label"` // short month name, e.g. "Jan"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Engine computes per-month income and expense sums for a user.
type Engine struct {
	db  *gorm.DB
	now func() time.Time // injectable anchor for tests
}

// NewEngine returns an Engine anchored on the current time.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db, now: time.Now}
}

// NewEngineAt returns an Engine with an explicit clock.
func NewEngineAt(db *gorm.DB, now func() time.Time) *Engine {
	return &Engine{db: db, now: now}
}

// Monthly returns exactly monthsBack entries, oldest month first, anchored on
// the current calendar month. Income and expenses are summed independently.
func (e *Engine) Monthly(ctx context.Context, p session.Principal, monthsBack int) ([]MonthPoint, error) {
	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}
	now := e.now()
	points := make([]MonthPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		// First day of the month i months before the current one. time.Date
		// normalizes out-of-range months, so January minus one is December.
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0) // exclusive upper bound covers the full month

		income, err := e.sum(ctx, &domain.Income{}, p.UserID, start, end)
		if err != nil {
			return nil, err
		}
		expenses, err := e.sum(ctx, &domain.Expense{}, p.UserID, start, end)
		if err != nil {
			return nil, err
		}
		points = append(points, MonthPoint{
			Label:    start.Month().String()[:3],
			Income:   income,
			Expenses: expenses,
		})
	}
	return points, nil
}

// sum adds the amounts of one record kind for the user within [start, end).
// Summation happens in decimal arithmetic, never float64, so cent-level
// precision survives no matter how many rows fall in the month.
func (e *Engine) sum(ctx context.Context, model any, userID uint, start, end time.Time) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := e.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}
