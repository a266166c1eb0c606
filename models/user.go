package models

import (
	"gorm.io/gorm"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `gorm:"unique;not null" json:"email"`
	Password        string         `gorm:"not null" json:"-"`
	Role            string         `gorm:"not null" json:"role"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at"`
	RememberToken   string         `json:"-"`
	Orders          []Order        `json:"-"`
	SessionTokens   []SessionToken `json:"-"`
}

// HasVerifiedEmail reports whether the account went through email verification.
func (u *User) HasVerifiedEmail() bool {
	return u.EmailVerifiedAt != nil
}
