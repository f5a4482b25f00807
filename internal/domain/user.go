package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`        // Primary key (matches the session principal id)
	Email     string    `gorm:"index;size:255" json:"email"` // Email; may be empty for lazily provisioned users, so uniqueness is enforced at registration
	Name      string    `gorm:"size:255" json:"name"`        // Display name
	Image     string    `gorm:"size:512" json:"image"`       // Avatar URL
	Password  string    `gorm:"size:255" json:"-"`           // Hashed password; empty for lazily provisioned users
	Role      string    `gorm:"default:user" json:"role"`    // Role: user or admin
	CreatedAt time.Time `json:"createdAt"`
}
