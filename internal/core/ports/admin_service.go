package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// SettingsService reads and updates the site branding.
type SettingsService interface {
	// Get never fails with not-found; defaults are returned instead.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, actor Actor, patch domain.SettingsPatch) (*domain.SiteSettings, error)
}

// AdminService exposes user management and the audit trail to admins.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actor Actor, userID string, role domain.Role) (*domain.User, error)
	// AuditLogs clamps limit to [1, 500]; a non-positive limit means 100.
	AuditLogs(ctx context.Context, limit int) ([]*domain.AuditLogEntry, error)
}
