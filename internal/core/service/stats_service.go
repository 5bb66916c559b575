package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

const recentItems = 5

type statsService struct {
	translations ports.TranslationRepository
	memorandums  ports.MemorandumRepository
}

// NewStatsService returns a StatsService implementation.
func NewStatsService(translations ports.TranslationRepository, memorandums ports.MemorandumRepository) ports.StatsService {
	return &statsService{translations: translations, memorandums: memorandums}
}

// Summary loads both document lists concurrently.
func (s *statsService) Summary(ctx context.Context, actor ports.Actor) (*ports.Stats, error) {
	var (
		translations []*domain.Translation
		memorandums  []*domain.Memorandum
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		translations, err = s.translations.ListByUser(gctx, actor.User.ID)
		return err
	})
	g.Go(func() error {
		var err error
		memorandums, err = s.memorandums.ListByUser(gctx, actor.User.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ports.Stats{
		TotalTranslations:  len(translations),
		TotalMemorandums:   len(memorandums),
		RecentTranslations: head(translations, recentItems),
		RecentMemorandums:  head(memorandums, recentItems),
	}, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}
