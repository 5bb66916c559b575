package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

var (
	errUnauthorized = map[string]string{"error": "Unauthorized"}
	errForbidden    = map[string]string{"error": "Forbidden"}
)

// Session resolves the session cookie into a server-side session and stores it
// on the request. It never rejects: anonymous requests pass through with no
// identity. A live session has its expiry and cookie pushed forward.
func Session(codec *session.Codec, store ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := codec.Read(c.Request())
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			sess, err := store.Get(ctx, id)
			switch {
			case errors.Is(err, domain.ErrSessionNotFound):
				codec.Clear(c.Response())
				return next(c)
			case err != nil:
				log.Warn().Err(err).Msg("session lookup failed, continuing anonymously")
				return next(c)
			}

			if err := store.Touch(ctx, sess.ID); err != nil {
				log.Warn().Err(err).Msg("failed to refresh session expiry")
			}
			if err := codec.Write(c.Response(), sess.ID); err != nil {
				log.Warn().Err(err).Msg("failed to re-issue session cookie")
			}

			session.Set(c, &session.Identity{Session: sess})
			return next(c)
		}
	}
}

// RequireAuthenticated rejects requests without a session.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := session.CurrentSession(c); !ok {
				return c.JSON(http.StatusUnauthorized, errUnauthorized)
			}
			return next(c)
		}
	}
}

// AttachUser loads the session's user onto the request identity. Requests
// without a session pass through untouched; a session whose user has been
// removed is dropped.
func AttachUser(auth ports.AuthService, codec *session.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := session.CurrentSession(c)
			if !ok {
				return next(c)
			}

			user, err := auth.CurrentUser(c.Request().Context(), sess)
			if errors.Is(err, domain.ErrUnauthenticated) {
				session.Set(c, nil)
				codec.Clear(c.Response())
				return next(c)
			}
			if err != nil {
				return err
			}

			session.From(c).User = user
			return next(c)
		}
	}
}
