package response

import "github.com/gin-gonic/gin"

// Fail sends a localized error response: {"error": "..."}.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, gin.H{"error": GetMessage(code)})
}

// FailWithFields sends a localized error response with field-level validation
// details: {"error": "...", "fields": {...}}.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, gin.H{"error": GetMessage(code), "fields": fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": GetMessage(code)})
}
