package ports

import (
	"context"
	"time"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// SettingsRepository stores the singleton site settings record.
type SettingsRepository interface {
	// Get returns domain.ErrNotFound until the record has been written once.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	// Upsert applies the non-nil patch fields, creating the record if needed.
	Upsert(ctx context.Context, patch domain.SettingsPatch, now time.Time) (*domain.SiteSettings, error)
}
