package utils

import "github.com/gin-gonic/gin"

// SuccessResponse builds the standard success envelope. Payload keys in
// data are merged into the top level so screens can read response.data.orders
// etc. directly.
func SuccessResponse(message string, data gin.H) gin.H {
	res := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range data {
		res[k] = v
	}
	return res
}

func ErrorResponse(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}
