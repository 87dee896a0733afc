package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// CheckRole will protect endpoint from user that is not a specific roles
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := utilities.ExtractPrincipal(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "Access Denied",
			})
			return
		}

		if !utilities.Contains(roles, principal.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "Access Denied",
			})
		}
	}
}
