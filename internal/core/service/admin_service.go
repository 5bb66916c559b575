package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 500
)

type adminService struct {
	users ports.UserRepository
	logs  ports.AuditRepository
	audit ports.Auditor
	log   zerolog.Logger
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(users ports.UserRepository, logs ports.AuditRepository, audit ports.Auditor, log zerolog.Logger) ports.AdminService {
	return &adminService{users: users, logs: logs, audit: audit, log: log}
}

func (s *adminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *adminService) UpdateRole(ctx context.Context, actor ports.Actor, userID string, role domain.Role) (*domain.User, error) {
	if _, ok := domain.ParseRole(string(role)); !ok {
		return nil, domain.NewValidationError("role", "Role must be either 'admin' or 'user'")
	}

	updated, err := s.users.UpdateRole(ctx, userID, role)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionUserRoleUpdate,
		Meta:      actor.Meta,
		Details:   map[string]any{"targetUserId": userID, "role": string(role)},
	})
	s.log.Info().Str("target_user_id", userID).Str("role", string(role)).Msg("user role updated")
	return updated, nil
}

// ClampAuditLimit maps a requested page size onto [1, MaxAuditLimit].
func ClampAuditLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultAuditLimit
	case limit > MaxAuditLimit:
		return MaxAuditLimit
	default:
		return limit
	}
}

func (s *adminService) AuditLogs(ctx context.Context, limit int) ([]*domain.AuditLogEntry, error) {
	return s.logs.List(ctx, ClampAuditLimit(limit))
}
