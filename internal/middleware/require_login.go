// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/session"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// RequireLogin resolves the session cookie against the store and places the
// verified identity in the context for downstream handlers. Requests without
// a live session are redirected to the login page.
func RequireLogin(store session.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := ctx.Cookie(session.CookieName)
		if err != nil {
			ctx.Redirect(http.StatusFound, "/auth/login")
			ctx.Abort()
			return
		}

		sess, err := store.Get(ctx.Request.Context(), id)
		if errors.Is(err, session.ErrNotFound) {
			ctx.Redirect(http.StatusFound, "/auth/login")
			ctx.Abort()
			return
		}
		if err != nil {
			logging.Log.WithError(err).Error("session store lookup failed")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "An error occurred.",
			})
			return
		}

		ctx.Set(utilities.PrincipalKey, sess)
		ctx.Next()
	}
}
