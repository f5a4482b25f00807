package domain

// Profile Model. One row per user, created with fixed defaults on first access.
type Profile struct {
	ID            uint   `gorm:"primaryKey" json:"id"`               // Primary key
	UserID        uint   `gorm:"uniqueIndex;not null" json:"userId"` // One-to-one with User
	Currency      string `gorm:"size:10;default:USD" json:"currency"`
	Language      string `gorm:"size:10;default:en" json:"language"`
	Theme         string `gorm:"size:20;default:light" json:"theme"`
	DateFormat    string `gorm:"size:20;default:MM/DD/YYYY" json:"dateFormat"`
	Notifications bool   `gorm:"default:true" json:"notifications"` // Whether the user wants notifications
}
