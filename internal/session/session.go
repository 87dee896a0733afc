// Package session implement the server-side session record behind the
// session cookie: an opaque id mapped to the authenticated identity through
// a pluggable store.
package session

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the opaque session id.
const CookieName = "connecthire_session"

// DefaultTTL applies when SESSION_TTL_HOURS is unset or invalid.
const DefaultTTL = 24 * time.Hour

// ErrNotFound reports that no live session exists for the given id.
var ErrNotFound = errors.New("session not found")

// Session is the payload established at login. The role inside is trusted
// by the guard middleware for the whole session lifetime.
type Session struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// Store persists sessions by id with a TTL. Implementations must return
// ErrNotFound for missing or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Set(ctx context.Context, id string, sess Session, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

// NewID generates an unguessable session id.
func NewID() string {
	return uuid.NewString()
}

// TTL reads the configured session lifetime from SESSION_TTL_HOURS.
func TTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || hours <= 0 {
		return DefaultTTL
	}
	return time.Duration(hours) * time.Hour
}
