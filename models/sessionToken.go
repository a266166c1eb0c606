package models

import (
	"gorm.io/gorm"
	"time"
)

// SessionToken is one live bearer credential. Only the SHA-256 of the token
// the client holds is stored; the plain token is shown once at login.
type SessionToken struct {
	gorm.Model
	TokenHash      string `gorm:"uniqueIndex;not null"`
	ExpirationTime time.Time
	UserID         uint
	Role           string
}
