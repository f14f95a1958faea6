package common

import "github.com/gin-gonic/gin"

// APIResponse is the JSON envelope used by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse writes a 200 response with the standard envelope
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(200, APIResponse{Success: true, Data: data})
}

// SuccessMessageResponse writes a 200 response carrying only a message
func SuccessMessageResponse(c *gin.Context, message string) {
	c.JSON(200, APIResponse{Success: true, Message: message})
}

// ErrorResponse writes an error response with the standard envelope
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Error: message})
}
