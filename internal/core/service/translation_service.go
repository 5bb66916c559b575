package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
	"github.com/lexbridge/legal-assistant/internal/core/prompt"
	"github.com/lexbridge/legal-assistant/internal/pkg/metrics"
)

const translationMaxTokens = 4096

type translationService struct {
	repo  ports.TranslationRepository
	llm   ports.Completer
	audit ports.Auditor
	log   zerolog.Logger
}

// NewTranslationService returns a TranslationService implementation.
func NewTranslationService(
	repo ports.TranslationRepository,
	llm ports.Completer,
	audit ports.Auditor,
	log zerolog.Logger,
) ports.TranslationService {
	return &translationService{repo: repo, llm: llm, audit: audit, log: log}
}

func (s *translationService) List(ctx context.Context, actor ports.Actor) ([]*domain.Translation, error) {
	return s.repo.ListByUser(ctx, actor.User.ID)
}

// Get returns the translation only when actor owns it.
func (s *translationService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Translation, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != actor.User.ID {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *translationService) Translate(ctx context.Context, actor ports.Actor, in ports.TranslateInput) (*domain.Translation, error) {
	if in.SourceLanguage == in.TargetLanguage {
		return nil, domain.NewValidationError("targetLanguage", "Target language must differ from source language")
	}
	if !s.llm.Configured() {
		metrics.LLMRequestsTotal.WithLabelValues("translate", "not_configured").Inc()
		return nil, domain.ErrLLMNotConfigured
	}

	system := prompt.TranslationPrompt(in.SourceLanguage, in.TargetLanguage, in.DocumentType, in.Purpose, in.Tone, in.Jurisdiction)
	out, err := s.llm.Complete(ctx, system, in.SourceText, ports.CompletionOptions{
		Operation:       "translate",
		Deterministic:   in.Deterministic,
		MaxOutputTokens: translationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Translation{
		UserID:         actor.User.ID,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		SourceText:     in.SourceText,
		TranslatedText: out,
		DocumentType:   in.DocumentType,
		Purpose:        in.Purpose,
		Tone:           in.Tone,
		Jurisdiction:   in.Jurisdiction,
	})
	if err != nil {
		// The completion is lost; nothing to roll back on the provider side.
		s.log.Error().Err(err).Str("user_id", actor.User.ID).Msg("failed to store translation")
		return nil, fmt.Errorf("translate: store: %w", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("translation", string(in.TargetLanguage)).Inc()
	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionTranslate,
		Meta:      actor.Meta,
		Details: map[string]any{
			"translationId":  created.ID,
			"sourceLanguage": string(in.SourceLanguage),
			"targetLanguage": string(in.TargetLanguage),
			"documentType":   string(in.DocumentType),
		},
	})
	s.log.Info().Str("translation_id", created.ID).Str("user_id", actor.User.ID).Msg("translation created")

	return created, nil
}

func (s *translationService) Revise(ctx context.Context, actor ports.Actor, id, translatedText string) (*domain.Translation, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.AppendVersion(ctx, id, translatedText)
	if err != nil {
		return nil, fmt.Errorf("revise translation: %w", err)
	}

	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionTranslationRevise,
		Meta:      actor.Meta,
		Details:   map[string]any{"translationId": id, "versions": len(updated.Versions)},
	})
	return updated, nil
}

func (s *translationService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete translation: %w", err)
	}

	s.audit.Record(ctx, ports.AuditInput{
		UserID:    actor.User.ID,
		UserEmail: actor.User.Email,
		Action:    domain.ActionTranslationDelete,
		Meta:      actor.Meta,
		Details:   map[string]any{"translationId": id},
	})
	return nil
}
