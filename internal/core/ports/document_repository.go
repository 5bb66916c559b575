package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// TranslationRepository persists translations and their version log.
type TranslationRepository interface {
	// ListByUser returns the user's translations, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Translation, error)
	// Get is not scoped by owner; callers enforce ownership.
	Get(ctx context.Context, id string) (*domain.Translation, error)
	Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error)
	// Delete removes the version rows first, then the translation itself.
	Delete(ctx context.Context, id string) error
	// AppendVersion records a new version and makes it the current text.
	AppendVersion(ctx context.Context, id, translatedText string) (*domain.Translation, error)
}

// MemorandumRepository persists memorandums and their version log.
type MemorandumRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Memorandum, error)
	Get(ctx context.Context, id string) (*domain.Memorandum, error)
	Create(ctx context.Context, m *domain.Memorandum) (*domain.Memorandum, error)
	Delete(ctx context.Context, id string) error
	AppendVersion(ctx context.Context, id, content string) (*domain.Memorandum, error)
}
