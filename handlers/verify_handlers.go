package handlers

import (
	"StoreBackend/mailer"
	"StoreBackend/models"
	"StoreBackend/token"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"time"
)

// VerifyEmailHandler completes the signed link sent at registration. The
// browser lands here, so the happy path ends in a redirect to the front end
// instead of a JSON body.
func VerifyEmailHandler(c *gin.Context, db *gorm.DB, secret, frontendURL string) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "Invalid/Expired url provided")
		return
	}
	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "Invalid/Expired url provided")
		return
	}

	if !token.CheckSignature(secret, uint(userID), expires, c.Query("signature")) {
		RespondError(c, http.StatusUnauthorized, "Invalid/Expired url provided")
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", uint(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "Account not found")
			return
		}
		RespondInternalError(c, err)
		return
	}

	// verifying twice is a no-op
	if !user.HasVerifiedEmail() {
		now := time.Now()
		if err := db.Model(&user).Update("email_verified_at", &now).Error; err != nil {
			RespondInternalError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, frontendURL+"/login")
}

func ResendVerificationHandler(c *gin.Context, db *gorm.DB, m mailer.Sender, secret, apiBaseURL string) {
	var resendReq struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&resendReq); err != nil {
		RespondValidationError(c, "Email is required")
		return
	}

	var user models.User
	err := db.First(&user, "email = ?", resendReq.Email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "Account not found")
			return
		}
		RespondInternalError(c, err)
		return
	}

	if user.HasVerifiedEmail() {
		RespondError(c, http.StatusBadRequest, "Your email is already verified")
		return
	}

	link := token.SignVerificationURL(secret, apiBaseURL, user.ID, verificationLinkTTL)
	if err := m.SendVerificationMail(user.Name, user.Email, link); err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "A verification link has been sent to your email", nil)
}
