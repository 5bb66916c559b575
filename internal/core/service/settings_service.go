package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

type settingsService struct {
	repo  ports.SettingsRepository
	audit ports.Auditor
	log   zerolog.Logger
}

// NewSettingsService returns a SettingsService implementation.
func NewSettingsService(repo ports.SettingsRepository, audit ports.Auditor, log zerolog.Logger) ports.SettingsService {
	return &settingsService{repo: repo, audit: audit, log: log}
}

func (s *settingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSiteSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, actor ports.Actor, patch domain.SettingsPatch) (*domain.SiteSettings, error) {
	updated, err := s.repo.Upsert(ctx, patch, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionSettingsUpdate,
		Meta:      actor.Meta,
		Details:   map[string]any{"fields": patchedFields(patch)},
	})
	s.log.Info().Str("user_id", actor.User.ID).Msg("site settings updated")
	return updated, nil
}

func patchedFields(p domain.SettingsPatch) []string {
	fields := make([]string, 0, 4)
	if p.LogoURL != nil {
		fields = append(fields, "logoUrl")
	}
	if p.AppTitle != nil {
		fields = append(fields, "appTitle")
	}
	if p.AppSubtitle != nil {
		fields = append(fields, "appSubtitle")
	}
	if p.FooterText != nil {
		fields = append(fields, "footerText")
	}
	return fields
}
