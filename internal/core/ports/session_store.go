package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// SessionStore keeps server-side sessions keyed by an opaque id.
type SessionStore interface {
	Create(ctx context.Context, userID string) (*domain.Session, error)
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Touch pushes the expiry of an existing session forward by the store TTL.
	Touch(ctx context.Context, id string) error
	Destroy(ctx context.Context, id string) error
}
