package entity

import (
	"time"

	"gorm.io/gorm"
)

// VerificationCode backs the phone registration wizard. Only the bcrypt
// hash of the 6-digit code is stored.
type VerificationCode struct {
	gorm.Model
	PhoneNumber string    `gorm:"index;not null" json:"phoneNumber"`
	Name        string    `json:"name"`
	CodeHash    string    `json:"-"`
	ExpiresAt   time.Time `json:"-"`
	Consumed    bool      `json:"-"`
}
