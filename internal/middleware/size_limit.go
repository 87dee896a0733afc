package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// headroom for multipart boundaries and part headers
var multipartOverhead = int64(8 * 1024)

// SizeLimit caps the request body at maxBodyBytes. Reading past the cap
// yields http.MaxBytesError, which gin surfaces as 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)

		c.Next()
	}
}
