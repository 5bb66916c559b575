package session

import (
	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

const identityKey = "session.identity"

// Identity is what the middleware chain knows about the caller. Session is
// set once a valid session cookie was presented; User is set by AttachUser.
type Identity struct {
	Session *domain.Session
	User    *domain.User
}

// Set stores the identity on the request.
func Set(c echo.Context, id *Identity) {
	c.Set(identityKey, id)
}

// From returns the identity stored on the request, or nil for anonymous
// callers.
func From(c echo.Context) *Identity {
	id, _ := c.Get(identityKey).(*Identity)
	return id
}

// CurrentSession returns the caller's session, if any.
func CurrentSession(c echo.Context) (*domain.Session, bool) {
	id := From(c)
	if id == nil || id.Session == nil {
		return nil, false
	}
	return id.Session, true
}

// CurrentUser returns the user attached by AttachUser, if any.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	id := From(c)
	if id == nil || id.User == nil {
		return nil, false
	}
	return id.User, true
}
