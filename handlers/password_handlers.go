package handlers

import (
	"StoreBackend/mailer"
	"StoreBackend/models"
	"StoreBackend/reset"
	"StoreBackend/token"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"net/http"
	"net/url"
)

// The forgot-password answer is identical whether or not the email exists,
// so the endpoint cannot be used to enumerate accounts.
const forgotPasswordMessage = "If the email is registered, a password reset link has been sent to it"

func ForgotPasswordHandler(c *gin.Context, db *gorm.DB, m mailer.Sender, frontendURL string) {
	var forgotReq struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&forgotReq); err != nil {
		RespondValidationError(c, "Email is required")
		return
	}
	if !ValidateEmail(forgotReq.Email) {
		RespondValidationError(c, "Email address is invalid")
		return
	}

	var user models.User
	err := db.First(&user, "email = ?", forgotReq.Email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondSuccess(c, http.StatusOK, forgotPasswordMessage, nil)
			return
		}
		RespondInternalError(c, err)
		return
	}

	plainToken, err := reset.Issue(db, user.Email)
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		frontendURL, plainToken, url.QueryEscape(user.Email))
	if err := m.SendResetMail(user.Name, user.Email, link); err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, forgotPasswordMessage, nil)
}

func ResetPasswordHandler(c *gin.Context, db *gorm.DB) {
	var resetReq struct {
		Token           string `json:"token" binding:"required"`
		Email           string `json:"email" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&resetReq); err != nil {
		RespondValidationError(c, "Token, email, password and confirmation are required")
		return
	}

	if !ValidateEmail(resetReq.Email) {
		RespondValidationError(c, "Email address is invalid")
		return
	}
	if !ValidatePassword(resetReq.Password) {
		RespondValidationError(c, PasswordPolicyMessage)
		return
	}
	if resetReq.ConfirmPassword != resetReq.Password {
		RespondValidationError(c, "Password and confirmation do not match")
		return
	}

	status, err := reset.Consume(db, resetReq.Email, resetReq.Token, func(tx *gorm.DB, user *models.User) error {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(resetReq.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		// rotate the remember token and drop every live session
		err = tx.Model(user).Updates(map[string]interface{}{
			"password":       string(hashedPassword),
			"remember_token": uuid.NewString(),
		}).Error
		if err != nil {
			return err
		}
		return token.RevokeAllForUser(tx, user.ID)
	})
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	if status != reset.Reset {
		RespondError(c, http.StatusBadRequest, status.Message())
		return
	}

	RespondSuccess(c, http.StatusOK, status.Message(), nil)
}
