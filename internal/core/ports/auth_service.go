package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  *string
	// PriorSessionID is the session the browser held before registering.
	PriorSessionID string
}

// LoginInput carries credentials plus the session the browser already holds,
// if any, so it can be rotated.
type LoginInput struct {
	Email          string
	Password       string
	PriorSessionID string
}

// AuthResult is returned by flows that establish a session.
type AuthResult struct {
	User    *domain.User
	Session *domain.Session
}

// AuthService handles credentials and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput, meta domain.RequestMeta) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput, meta domain.RequestMeta) (*AuthResult, error)
	Logout(ctx context.Context, sess *domain.Session, meta domain.RequestMeta) error
	// CurrentUser resolves the session's user. A session whose user no longer
	// exists is destroyed and domain.ErrUnauthenticated is returned.
	CurrentUser(ctx context.Context, sess *domain.Session) (*domain.User, error)
}
