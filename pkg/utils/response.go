package utils

import (
	"github.com/gin-gonic/gin"

	appErrors "freightconnect/pkg/errors"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// ValidationErrorResponse surfaces field-keyed validation messages so the
// client can highlight the offending inputs.
func ValidationErrorResponse(c *gin.Context, status int, fieldErrors appErrors.ValidationErrors) {
	c.JSON(status, Response{
		Success: false,
		Message: "validation failed",
		Errors:  fieldErrors,
	})
}
