package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types accepted by POST /api/transactions.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Income Model
type Income struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	UserID      uint            `gorm:"index;not null" json:"userId"`              // Foreign key to the owning User
	Description string          `gorm:"size:255;not null" json:"description"`      // What the money came from
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"` // Non-negative amount
	Category    string          `gorm:"size:100;not null" json:"category"`         // Free-text category label
	Date        time.Time       `gorm:"not null;index" json:"date"`                // Calendar date of the income
	CreatedAt   time.Time       `json:"createdAt"`
}

// Expense Model
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	UserID      uint            `gorm:"index;not null" json:"userId"`              // Foreign key to the owning User
	Description string          `gorm:"size:255;not null" json:"description"`      // What the money was spent on
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"` // Non-negative amount
	Category    string          `gorm:"size:100;not null" json:"category"`         // Free-text category label
	Date        time.Time       `gorm:"not null;index" json:"date"`                // Calendar date of the expense
	CreatedAt   time.Time       `json:"createdAt"`
}
