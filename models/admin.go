// admin.go - Defines the Admin model for the database

package models

// Admin is the single administrative identity. The row is seeded at startup
// from environment configuration and is never exposed through the API.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never plaintext
}
