package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
	"github.com/lexbridge/legal-assistant/internal/core/prompt"
	"github.com/lexbridge/legal-assistant/internal/pkg/metrics"
)

const memorandumMaxTokens = 8192

type memorandumService struct {
	repo  ports.MemorandumRepository
	llm   ports.Completer
	audit ports.Auditor
	log   zerolog.Logger
}

// NewMemorandumService returns a MemorandumService implementation.
func NewMemorandumService(
	repo ports.MemorandumRepository,
	llm ports.Completer,
	audit ports.Auditor,
	log zerolog.Logger,
) ports.MemorandumService {
	return &memorandumService{repo: repo, llm: llm, audit: audit, log: log}
}

func (s *memorandumService) List(ctx context.Context, actor ports.Actor) ([]*domain.Memorandum, error) {
	return s.repo.ListByUser(ctx, actor.User.ID)
}

func (s *memorandumService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Memorandum, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != actor.User.ID {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// Generate drafts a memorandum and stores the model output as-is.
func (s *memorandumService) Generate(ctx context.Context, actor ports.Actor, in ports.GenerateMemorandumInput) (*domain.Memorandum, error) {
	if !s.llm.Configured() {
		metrics.LLMRequestsTotal.WithLabelValues("memorandum", "not_configured").Inc()
		return nil, domain.ErrLLMNotConfigured
	}

	defense := in.DefensePoints
	if defense != nil && strings.TrimSpace(*defense) == "" {
		defense = nil
	}

	system := prompt.MemorandumPrompt(in.Type, in.Language, in.Strength)
	user := prompt.MemorandumUserPrompt(in.Language, in.CourtName, in.CaseNumber, in.CaseFacts, in.LegalRequests, defense)

	out, err := s.llm.Complete(ctx, system, user, ports.CompletionOptions{
		Operation:       "memorandum",
		Deterministic:   in.Deterministic,
		MaxOutputTokens: memorandumMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate memorandum: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Memorandum{
		UserID:           actor.User.ID,
		Type:             in.Type,
		Language:         in.Language,
		CourtName:        in.CourtName,
		CaseNumber:       in.CaseNumber,
		CaseFacts:        in.CaseFacts,
		LegalRequests:    in.LegalRequests,
		DefensePoints:    defense,
		Strength:         in.Strength,
		GeneratedContent: out,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", actor.User.ID).Msg("failed to store memorandum")
		return nil, fmt.Errorf("generate memorandum: store: %w", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("memorandum", string(in.Language)).Inc()
	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionMemorandumGenerate,
		Meta:      actor.Meta,
		Details: map[string]any{
			"memorandumId": created.ID,
			"type":         string(in.Type),
			"language":     string(in.Language),
			"caseNumber":   in.CaseNumber,
		},
	})
	s.log.Info().Str("memorandum_id", created.ID).Str("user_id", actor.User.ID).Msg("memorandum generated")

	return created, nil
}

func (s *memorandumService) Revise(ctx context.Context, actor ports.Actor, id, content string) (*domain.Memorandum, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.AppendVersion(ctx, id, content)
	if err != nil {
		return nil, fmt.Errorf("revise memorandum: %w", err)
	}

	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionMemorandumRevise,
		Meta:      actor.Meta,
		Details:   map[string]any{"memorandumId": id, "versions": len(updated.Versions)},
	})
	return updated, nil
}

func (s *memorandumService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete memorandum: %w", err)
	}

	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionMemorandumDelete,
		Meta:      actor.Meta,
		Details:   map[string]any{"memorandumId": id},
	})
	return nil
}
