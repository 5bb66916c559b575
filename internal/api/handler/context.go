package handler

import (
	"net"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

// requestMeta captures what the audit log records about a request. The IP is
// the first X-Forwarded-For hop when present, else the socket peer.
func requestMeta(c echo.Context) domain.RequestMeta {
	req := c.Request()

	ip := ""
	if xff := req.Header.Get(echo.HeaderXForwardedFor); xff != "" {
		ip = strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if ip == "" {
		ip = req.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
	}

	return domain.RequestMeta{IPAddress: ip, UserAgent: req.UserAgent()}
}

// currentActor builds the service-level actor from the identity attached by
// the AttachUser middleware.
func currentActor(c echo.Context) (ports.Actor, error) {
	user, ok := session.CurrentUser(c)
	if !ok {
		return ports.Actor{}, domain.ErrUnauthenticated
	}
	return ports.Actor{User: user, Meta: requestMeta(c)}, nil
}

// bindAndValidate decodes the JSON body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("body", "malformed JSON body")
	}
	return c.Validate(req)
}
