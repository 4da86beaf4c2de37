package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/logger"
)

// Recovery converts a handler panic into the standard 500 envelope
// instead of dropping the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", r), map[string]interface{}{
					"request_id": c.GetString(ContextRequestID),
					"path":       c.Request.URL.Path,
				})

				response.InternalServerError(c, "An unexpected error occurred")
				c.Abort()
			}
		}()

		c.Next()
	}
}
