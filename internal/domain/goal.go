package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Goal Model
type Goal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`                             // Primary key
	UserID        uint            `gorm:"index;not null" json:"userId"`                     // Foreign key to the owning User
	Name          string          `gorm:"size:255;not null" json:"name"`                    // Goal name
	TargetAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"targetAmount"`  // Amount to save
	CurrentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"currentAmount"` // Saved so far, defaults to 0
	StartDate     time.Time       `gorm:"not null" json:"startDate"`                        // When saving began
	TargetDate    time.Time       `gorm:"not null;index" json:"targetDate"`                 // Deadline for the goal
	Category      string          `gorm:"size:100" json:"category"`                         // Free-text category label
	Priority      string          `gorm:"size:10;default:medium" json:"priority"`           // low, medium or high
	Notes         string          `gorm:"size:1000" json:"notes"`                           // Optional notes
	CreatedAt     time.Time       `json:"createdAt"`
}
