package middleware

import (
	"os"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

func keyFunc(c *gin.Context) string {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return "user: " + principal.UserID.String()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.AbortWithStatusJSON(429, utilities.ErrorResponse{
		Error: "Too many requests. Please try again later.",
	})
}

// RateLimiterMiddleware limits each session (or client IP before login) to
// reqPerSec requests per second.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}

// EnvRateLimitMiddleware builds the limiter from
// RATE_LIMIT_REQUESTS_PER_SECOND. Unset or non-positive disables limiting
// entirely, which is the default deployment shape.
func EnvRateLimitMiddleware() gin.HandlerFunc {

	rateLimitString := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND")
	rateLimitInt, err := strconv.Atoi(rateLimitString)

	if err != nil || rateLimitInt <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return RateLimiterMiddleware(uint(rateLimitInt))
}
