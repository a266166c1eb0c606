package handlers

import (
	"regexp"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ValidateEmail checks email syntax.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword enforces the password policy: at least 6 characters with
// at least one lowercase letter, one uppercase letter, one digit and one
// symbol.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
		hasSymbol = false
	)

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSymbol
}

// PasswordPolicyMessage is the validation text for a rejected password.
const PasswordPolicyMessage = "Password must be at least 6 characters and contain a lowercase letter, an uppercase letter, a digit and a symbol"
