package report

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T, anchor time.Time) (*Engine, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Income{}, &domain.Expense{}))
	return NewEngineAt(gdb, func() time.Time { return anchor }), gdb
}

func addIncome(t *testing.T, gdb *gorm.DB, userID uint, amount string, date time.Time) {
	t.Helper()
	require.NoError(t, gdb.Create(&domain.Income{
		UserID:      userID,
		Description: "income",
		Amount:      decimal.RequireFromString(amount),
		Category:    "Misc",
		Date:        date,
	}).Error)
}

func addExpense(t *testing.T, gdb *gorm.DB, userID uint, amount string, date time.Time) {
	t.Helper()
	require.NoError(t, gdb.Create(&domain.Expense{
		UserID:      userID,
		Description: "expense",
		Amount:      decimal.RequireFromString(amount),
		Category:    "Misc",
		Date:        date,
	}).Error)
}

func TestMonthlyAlwaysReturnsSixOrderedEntries(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	engine, _ := newTestEngine(t, anchor)

	points, err := engine.Monthly(context.Background(), session.Principal{UserID: 1}, 6)
	require.NoError(t, err)
	require.Len(t, points, 6)

	// Oldest first, every month present even with no records.
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
		require.True(t, p.Income.IsZero())
		require.True(t, p.Expenses.IsZero())
	}
	require.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, labels)
}

func TestMonthlyBucketsAndSums(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	engine, gdb := newTestEngine(t, anchor)
	ctx := context.Background()

	addIncome(t, gdb, 1, "1000.00", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	addIncome(t, gdb, 1, "250.50", time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))
	addExpense(t, gdb, 1, "100.50", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	addExpense(t, gdb, 1, "0.25", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
	// June records must not leak into May.
	addExpense(t, gdb, 1, "999.99", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	points, err := engine.Monthly(ctx, session.Principal{UserID: 1}, 6)
	require.NoError(t, err)

	may := points[4]
	require.Equal(t, "May", may.Label)
	require.True(t, may.Income.Equal(decimal.RequireFromString("1250.50")),
		"expected 1250.50, got %s", may.Income)
	require.True(t, may.Expenses.Equal(decimal.RequireFromString("100.75")),
		"expected 100.75, got %s", may.Expenses)

	june := points[5]
	require.Equal(t, "Jun", june.Label)
	require.True(t, june.Expenses.Equal(decimal.RequireFromString("999.99")))
	require.True(t, june.Income.IsZero())
}

func TestMonthlySumsUseExactDecimalArithmetic(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	engine, gdb := newTestEngine(t, anchor)

	// 0.10 added ten times drifts under float64 but not under decimal.
	for i := 0; i < 10; i++ {
		addExpense(t, gdb, 1, "0.10", time.Date(2024, 6, i+1, 0, 0, 0, 0, time.UTC))
	}

	points, err := engine.Monthly(context.Background(), session.Principal{UserID: 1}, 6)
	require.NoError(t, err)
	require.True(t, points[5].Expenses.Equal(decimal.RequireFromString("1.00")),
		"expected exactly 1.00, got %s", points[5].Expenses)
}

func TestMonthlyCrossesYearBoundary(t *testing.T) {
	anchor := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	engine, _ := newTestEngine(t, anchor)

	points, err := engine.Monthly(context.Background(), session.Principal{UserID: 1}, 6)
	require.NoError(t, err)

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	require.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, labels)
}

func TestMonthlyIsScopedToTheUser(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	engine, gdb := newTestEngine(t, anchor)

	addIncome(t, gdb, 1, "500", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	points, err := engine.Monthly(context.Background(), session.Principal{UserID: 2}, 6)
	require.NoError(t, err)
	for _, p := range points {
		require.True(t, p.Income.IsZero())
		require.True(t, p.Expenses.IsZero())
	}
}

func TestMonthlyDefaultsWindowWhenNonPositive(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	engine, _ := newTestEngine(t, anchor)

	points, err := engine.Monthly(context.Background(), session.Principal{UserID: 1}, 0)
	require.NoError(t, err)
	require.Len(t, points, DefaultMonthsBack)
}
