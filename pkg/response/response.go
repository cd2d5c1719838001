package response

import (
	"github.com/gin-gonic/gin"
)

// Error writes the API error body: {"error": message} plus optional details
// (field -> message map produced by pkg/validation).
func Error(c *gin.Context, status int, message string, details any) {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortError writes the error body and stops the handler chain. Used by middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// Message writes a bare acknowledgment body: {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
