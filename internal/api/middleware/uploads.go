package middleware

import "github.com/gin-gonic/gin"

// ServeUploads marks stored uploads so browsers keep the Content-Type the
// server picked from the stored extension.
func ServeUploads() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("X-Content-Type-Options", "nosniff")
		ctx.Next()
	}
}
