package handlers

import (
	"StoreBackend/mailer"
	"StoreBackend/models"
	"StoreBackend/token"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"net/http"
	"time"
)

const (
	sessionTokenTTL     = 24 * time.Hour
	verificationLinkTTL = 60 * time.Minute

	// The same message answers both unknown email and wrong password, so a
	// caller cannot probe which emails are registered.
	badCredentialsMessage = "Email or password is incorrect"
)

func LoginHandler(c *gin.Context, db *gorm.DB, secret string) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		RespondValidationError(c, "Email and password are required")
		return
	}

	// find user
	var user models.User
	err := db.First(&user, "email = ?", loginReq.Email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, badCredentialsMessage)
			return
		}
		RespondInternalError(c, err)
		return
	}

	if !user.HasVerifiedEmail() {
		RespondError(c, http.StatusForbidden, "Your email is not verified yet")
		return
	}

	// check password before minting anything
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginReq.Password))
	if err != nil {
		RespondError(c, http.StatusNotFound, badCredentialsMessage)
		return
	}

	plainToken, err := token.Issue(db, secret, &user, sessionTokenTTL)
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Login success", gin.H{
		"id":         user.ID,
		"token_type": "Bearer",
		"token":      plainToken,
		"role":       user.Role,
	})
}

func RegisterHandler(c *gin.Context, db *gorm.DB, m mailer.Sender, secret, apiBaseURL string) {
	var registerReq struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&registerReq); err != nil {
		RespondValidationError(c, "Name, email and password are required")
		return
	}

	if len(registerReq.Name) < 3 {
		RespondValidationError(c, "Name must be at least 3 characters")
		return
	}
	if !ValidateEmail(registerReq.Email) {
		RespondValidationError(c, "Email address is invalid")
		return
	}
	if !ValidatePassword(registerReq.Password) {
		RespondValidationError(c, PasswordPolicyMessage)
		return
	}

	// check the email is not taken
	var existing models.User
	err := db.First(&existing, "email = ?", registerReq.Email).Error
	if err == nil {
		RespondValidationError(c, "Email address is already registered")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		RespondInternalError(c, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerReq.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	newUser := models.User{
		Name:          registerReq.Name,
		Email:         registerReq.Email,
		Password:      string(hashedPassword),
		Role:          models.RoleCustomer,
		RememberToken: uuid.NewString(),
	}
	if err := db.Create(&newUser).Error; err != nil {
		RespondInternalError(c, err)
		return
	}

	// new accounts must verify their email before they can log in
	link := token.SignVerificationURL(secret, apiBaseURL, newUser.ID, verificationLinkTTL)
	if err := m.SendVerificationMail(newUser.Name, newUser.Email, link); err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, "Account registered successfully", nil)
}

func LogOutHandler(c *gin.Context, db *gorm.DB) {
	tok, exists := c.Get("Token")
	if !exists {
		RespondError(c, http.StatusBadRequest, "No active session token")
		return
	}

	err := token.Revoke(db, tok.(string))
	if err != nil {
		if errors.Is(err, token.ErrTokenRevoked) {
			RespondError(c, http.StatusBadRequest, "Token not found or already logged out")
			return
		}
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

func ChangePasswordHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		RespondInternalError(c, errors.New("user id missing from authenticated request"))
		return
	}

	var changeReq struct {
		OldPassword     string `json:"old_password" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&changeReq); err != nil {
		RespondValidationError(c, "Old password, new password and confirmation are required")
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		RespondInternalError(c, err)
		return
	}

	// gate on the old password before any validation feedback
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(changeReq.OldPassword))
	if err != nil {
		RespondError(c, http.StatusNotFound, "Your old password is incorrect")
		return
	}

	if changeReq.Password == changeReq.OldPassword {
		RespondValidationError(c, "New password must be different from the old password")
		return
	}
	if !ValidatePassword(changeReq.Password) {
		RespondValidationError(c, PasswordPolicyMessage)
		return
	}
	if changeReq.ConfirmPassword != changeReq.Password {
		RespondValidationError(c, "New password and confirmation do not match")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(changeReq.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		RespondInternalError(c, err)
		return
	}

	// force re-login with the new password
	tok, exists := c.Get("Token")
	if exists {
		if err := token.Revoke(db, tok.(string)); err != nil && !errors.Is(err, token.ErrTokenRevoked) {
			RespondInternalError(c, err)
			return
		}
	}

	RespondSuccess(c, http.StatusOK, "Password changed successfully", nil)
}
