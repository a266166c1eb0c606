package handlers

import (
	"StoreBackend/models"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

// OrderHistoryHandler returns a user's orders with courier and line-item
// details. A customer may only read their own history; admins may read any.
func OrderHistoryHandler(c *gin.Context, db *gorm.DB) {
	requesterID, ok := c.Get("UserID")
	if !ok {
		RespondInternalError(c, errors.New("user id missing from authenticated request"))
		return
	}
	role, _ := c.Get("Role")

	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusNotFound, "Account not found")
		return
	}

	if requesterID.(uint) != uint(userID) && role != models.RoleAdmin {
		RespondError(c, http.StatusForbidden, "Forbidden")
		return
	}

	var orders []models.Order
	err = db.
		Preload("Courier").
		Preload("OrderItems.Product").
		Preload("OrderItems.Hamper").
		Preload("OrderItems.Consignment").
		Find(&orders, "user_id = ?", uint(userID)).
		Error
	if err != nil {
		RespondInternalError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Order history retrieved successfully", orders)
}
