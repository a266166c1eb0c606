package token

import (
	"StoreBackend/models"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"time"
)

var ErrTokenRevoked = errors.New("token revoked or unknown")

// HashToken derives the value persisted for a session token. The plain token
// is never stored.
func HashToken(tok string) string {
	sum := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:])
}

// Issue mints a bearer token for the user and records its hash so it can be
// revoked later. The returned plain token is shown to the client only once.
func Issue(db *gorm.DB, secret string, user *models.User, ttl time.Duration) (string, error) {
	expirationTime := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     expirationTime.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	sessionToken := models.SessionToken{
		TokenHash:      HashToken(tokenString),
		ExpirationTime: expirationTime,
		UserID:         user.ID,
		Role:           user.Role,
	}
	if err := db.Create(&sessionToken).Error; err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate checks the token signature and expiry, then requires a live
// session_tokens row so logout and password changes invalidate it.
func Validate(db *gorm.DB, secret string, tokenString string) (uint, string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	if !tok.Valid {
		return 0, "", jwt.ErrTokenSignatureInvalid
	}

	// check the token has not been revoked
	var sessionToken models.SessionToken
	err = db.Where("token_hash = ?", HashToken(tokenString)).First(&sessionToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrTokenRevoked
		}
		return 0, "", err
	}
	if time.Now().After(sessionToken.ExpirationTime) {
		return 0, "", jwt.ErrTokenExpired
	}

	claims := tok.Claims.(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))
	role := claims["role"].(string)

	return userID, role, nil
}

// Revoke deletes the session row for the given plain token.
func Revoke(db *gorm.DB, tokenString string) error {
	result := db.Where("token_hash = ?", HashToken(tokenString)).Delete(&models.SessionToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenRevoked
	}
	return nil
}

// RevokeAllForUser drops every live session of a user, forcing re-login.
func RevokeAllForUser(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.SessionToken{}).Error
}
