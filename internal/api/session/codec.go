// Package session carries the browser session across the HTTP layer: the
// signed cookie that names a server-side session, and the typed identity the
// middleware attaches to each request.
package session

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("session: invalid token")

// Options configures the session cookie.
type Options struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	// Secure marks the cookie Secure (production).
	Secure bool
	// CrossSite switches SameSite from Lax to None for a UI served from
	// another origin. Browsers only accept SameSite=None on Secure cookies.
	CrossSite bool
}

// Codec signs session ids into cookie values and reads them back.
// The cookie value is an HS256 JWT whose jti is the session id.
type Codec struct {
	name     string
	secret   []byte
	ttl      time.Duration
	secure   bool
	sameSite http.SameSite
	now      func() time.Time
}

func NewCodec(opts Options) *Codec {
	c := &Codec{
		name:     opts.CookieName,
		secret:   []byte(opts.Secret),
		ttl:      opts.TTL,
		secure:   opts.Secure,
		sameSite: http.SameSiteLaxMode,
		now:      time.Now,
	}
	if c.name == "" {
		c.name = "legal.sid"
	}
	if c.ttl <= 0 {
		c.ttl = 7 * 24 * time.Hour
	}
	if opts.CrossSite {
		c.sameSite = http.SameSiteNoneMode
		c.secure = true
	}
	return c
}

// Name returns the cookie name.
func (c *Codec) Name() string { return c.name }

// Sign returns the cookie value for sessionID.
func (c *Codec) Sign(sessionID string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse verifies a cookie value and returns the session id it carries.
func (c *Codec) Parse(value string) (string, error) {
	var claims jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(value, &claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !tkn.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}

// Read extracts the session id from the request cookie, if present and valid.
func (c *Codec) Read(r *http.Request) (string, bool) {
	ck, err := r.Cookie(c.name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	id, err := c.Parse(ck.Value)
	if err != nil {
		return "", false
	}
	return id, true
}

// Write sets (or re-issues) the session cookie, replacing any session cookie
// already queued on the response.
func (c *Codec) Write(w http.ResponseWriter, sessionID string) error {
	value, err := c.Sign(sessionID)
	if err != nil {
		return err
	}
	c.set(w, &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		Expires:  c.now().Add(c.ttl),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	})
	return nil
}

// Clear expires the session cookie on the client.
func (c *Codec) Clear(w http.ResponseWriter) {
	c.set(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	})
}

func (c *Codec) set(w http.ResponseWriter, ck *http.Cookie) {
	h := w.Header()
	prefix := c.name + "="
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
	http.SetCookie(w, ck)
}
