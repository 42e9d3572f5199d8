package models

import "gorm.io/gorm"

// User is an exam taker. Accounts are created once by registration and never
// updated or deleted afterwards.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never the plaintext
}
