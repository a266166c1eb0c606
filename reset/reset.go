package reset

import (
	"StoreBackend/models"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

// TokenTTL is how long a reset token stays valid.
const TokenTTL = 60 * time.Minute

type Status int

const (
	Reset Status = iota
	InvalidToken
	Expired
)

// Message returns the client-facing text for a consume outcome.
func (s Status) Message() string {
	switch s {
	case Reset:
		return "Your password has been reset"
	case Expired:
		return "This password reset token has expired"
	default:
		return "This password reset token is invalid"
	}
}

func hashToken(tok string) string {
	sum := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:])
}

// Issue stores a fresh reset token for the email and returns the plain token
// to embed in the mail link. Any previous token for the email is replaced.
func Issue(db *gorm.DB, email string) (string, error) {
	plainToken := uuid.NewString()

	row := models.PasswordResetToken{
		Email:     email,
		TokenHash: hashToken(plainToken),
		CreatedAt: time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return "", err
	}

	return plainToken, nil
}

// Consume validates a presented token and, when valid, runs set on the user
// row and deletes the token in the same transaction. Tokens are single-use.
func Consume(db *gorm.DB, email, plainToken string, set func(tx *gorm.DB, user *models.User) error) (Status, error) {
	var row models.PasswordResetToken
	err := db.First(&row, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvalidToken, nil
		}
		return InvalidToken, err
	}

	if row.TokenHash != hashToken(plainToken) {
		return InvalidToken, nil
	}

	if time.Since(row.CreatedAt) > TokenTTL {
		// stale token is useless, drop it
		if err := db.Delete(&models.PasswordResetToken{}, "email = ?", email).Error; err != nil {
			return Expired, err
		}
		return Expired, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			return err
		}
		if err := set(tx, &user); err != nil {
			return err
		}
		return tx.Delete(&models.PasswordResetToken{}, "email = ?", email).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvalidToken, nil
		}
		return InvalidToken, err
	}

	return Reset, nil
}
