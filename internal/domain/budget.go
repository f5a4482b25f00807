package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget Model
type Budget struct {
	ID         uint             `gorm:"primaryKey" json:"id"`                          // Primary key
	UserID     uint             `gorm:"index;not null" json:"userId"`                  // Foreign key to the owning User
	StartDate  time.Time        `gorm:"not null" json:"startDate"`                     // When the budget period begins
	EndDate    *time.Time       `json:"endDate"`                                       // Nil while the budget is active
	Categories []BudgetCategory `gorm:"constraint:OnDelete:CASCADE" json:"categories"` // Allocated category caps
	CreatedAt  time.Time        `json:"createdAt"`
}

// BudgetCategory Model. Ownership is enforced through the parent Budget,
// never checked directly on this row.
type BudgetCategory struct {
	ID       uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	BudgetID uint            `gorm:"index;not null" json:"budgetId"`            // Foreign key to the parent Budget
	Name     string          `gorm:"size:100;not null" json:"name"`             // Category label
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"` // Allocated cap
}
