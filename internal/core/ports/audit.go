package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// AuditRepository is the append-only audit log store.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLogEntry) error
	// List returns at most limit entries, newest first.
	List(ctx context.Context, limit int) ([]*domain.AuditLogEntry, error)
}

// AuditInput describes one sensitive action to record.
type AuditInput struct {
	UserID    string
	UserEmail string
	Action    domain.AuditAction
	Meta      domain.RequestMeta
	Details   map[string]any
}

// Auditor records audit entries on a best-effort basis. Implementations never
// report failures to the caller.
type Auditor interface {
	Record(ctx context.Context, in AuditInput)
}
