package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope so the frontend can handle
// responses uniformly.
func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"success": true, "message": message, "data": data, "statusCode": code})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message, "data": nil, "statusCode": code})
}
