package domain

import "time"

// Notification Model
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`             // Primary key
	UserID    uint      `gorm:"index;not null" json:"userId"`     // Foreign key to the owning User
	Type      string    `gorm:"size:50;not null" json:"type"`     // Notification kind, e.g. budget_alert
	Message   string    `gorm:"size:500;not null" json:"message"` // Human-readable message
	Read      bool      `gorm:"default:false" json:"read"`        // Whether the user has seen it
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
