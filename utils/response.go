package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. Retryable errors carry a hint so
// clients know resubmitting the same request may succeed.
func JSONError(c *gin.Context, status int, err error, message string, retryable bool) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if retryable {
		body["retryable"] = true
	}
	c.JSON(status, body)
}
