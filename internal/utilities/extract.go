package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/deveshjagdale07/ConnectHire/internal/session"
)

// PrincipalKey is the gin context key holding the verified session identity.
const PrincipalKey = "principal"

// ExtractPrincipal extracts the verified session identity from Gin context.
// It does not abort the request; callers decide how to respond on error.
func ExtractPrincipal(c *gin.Context) (session.Session, error) {
	p, _ := c.Get(PrincipalKey)
	if p == nil {
		return session.Session{}, errors.New("session information not provided")
	}

	principal, ok := p.(session.Session)
	if !ok {
		return session.Session{}, errors.New("failed to assert type")
	}
	return principal, nil
}
