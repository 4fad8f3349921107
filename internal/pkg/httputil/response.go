package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageResponse is the single envelope for plain confirmations and every
// error body: a human-readable message, no structured codes.
type MessageResponse struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
}

func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: err.Error()})
}

func GetUserID(c *gin.Context) uuid.UUID {
	if id, exists := c.Get("user_id"); exists {
		return id.(uuid.UUID)
	}
	return uuid.Nil
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		return id.(string)
	}
	return ""
}
