package admin

import (
	"context"
	"time"
)

// Session is an issued admin dashboard session.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service defines the interface for admin authentication. The credential is
// verified server-side; the client only ever holds the expiring token.
type Service interface {
	// Login verifies the dashboard password and issues a session token.
	Login(ctx context.Context, password string) (*Session, error)

	// Verify checks a bearer token and returns an error if it is not a
	// valid, unexpired admin session.
	Verify(token string) error
}
