package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
	"github.com/lexbridge/legal-assistant/internal/pkg/metrics"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an Auditor backed by repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.Auditor {
	return &auditService{repo: repo, log: log}
}

// Record writes one audit entry. A store failure is logged and counted, never
// returned: the action it describes has already succeeded.
func (s *auditService) Record(ctx context.Context, in ports.AuditInput) {
	entry := &domain.AuditLogEntry{
		UserID:    in.UserID,
		UserEmail: in.UserEmail,
		Action:    in.Action,
		Details:   in.Details,
		IPAddress: in.Meta.IPAddress,
		UserAgent: in.Meta.UserAgent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues(string(in.Action)).Inc()
		s.log.Warn().
			Err(err).
			Str("action", string(in.Action)).
			Str("user_id", in.UserID).
			Msg("failed to insert audit entry")
	}
}
