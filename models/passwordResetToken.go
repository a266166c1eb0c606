package models

import "time"

// PasswordResetToken holds the single active reset token for an email.
// Email is the primary key, so a new request replaces the previous token.
type PasswordResetToken struct {
	Email     string `gorm:"primaryKey"`
	TokenHash string `gorm:"not null"`
	CreatedAt time.Time
}
