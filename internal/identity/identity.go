// Package identity signs users up and in and resolves session tokens.
package identity

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
)

// CookieName carries the session token for browser clients.
const CookieName = "hive.session_token"

// Password length bounds enforced on sign-up and password change. bcrypt
// refuses anything longer than MaxPasswordLength bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Session is an authenticated user plus the token that proves it.
type Session struct {
	ID        string
	Token     string
	User      *domain.User
	ExpiresAt time.Time
}

type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Provider is the identity boundary used by the HTTP layer and the CLI.
// Client-facing failures are *contract.Error values.
type Provider interface {
	SignUp(ctx context.Context, in SignUpInput) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SessionFromToken(ctx context.Context, token string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	// ChangePassword revokes every session of the user and returns a fresh one.
	ChangePassword(ctx context.Context, userID, current, next string) (*Session, error)
	DeleteAccount(ctx context.Context, userID, password string) error
}
