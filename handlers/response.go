package handlers

import (
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// Every endpoint answers with the same envelope: {success, message, data?}.

func RespondSuccess(c *gin.Context, status int, message string, data any) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondInternalError logs the fault server-side and answers with a fixed
// message. Internal details never reach the client.
func RespondInternalError(c *gin.Context, err error) {
	log.Printf("%s %s: %v\n", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}

func RespondValidationError(c *gin.Context, message string) {
	RespondError(c, http.StatusUnprocessableEntity, message)
}
