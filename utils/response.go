// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError aborts the request with the error envelope.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "error": message})
}

func RespondWithData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func RespondWithMessage(c *gin.Context, code int, message string, data any) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}
