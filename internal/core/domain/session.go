package domain

import "time"

// Session binds a browser cookie to an authenticated user.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// RequestMeta carries the request attributes captured by audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
