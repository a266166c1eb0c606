package handlers

import (
	"StoreBackend/models"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
)

func GetProfileHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		RespondInternalError(c, errors.New("user id missing from authenticated request"))
		return
	}

	var user models.User
	err := db.First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "Account not found")
			return
		}
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfileHandler lets the authenticated user change their own name.
func UpdateProfileHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		RespondInternalError(c, errors.New("user id missing from authenticated request"))
		return
	}

	var updateReq struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		RespondValidationError(c, "Name is required")
		return
	}

	var user models.User
	err := db.First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "Account not found")
			return
		}
		RespondInternalError(c, err)
		return
	}

	if err := db.Model(&user).Update("name", updateReq.Name).Error; err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Profile updated successfully", user)
}

// GetCustomerListHandler returns every customer account. The router mounts it
// behind the admin gate.
func GetCustomerListHandler(c *gin.Context, db *gorm.DB) {
	var customers []models.User
	err := db.Find(&customers, "role = ?", models.RoleCustomer).Error
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Customers retrieved successfully", customers)
}
