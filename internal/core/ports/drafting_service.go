package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// Actor is the authenticated user performing a request.
type Actor struct {
	User *domain.User
	Meta domain.RequestMeta
}

// TranslateInput is the validated body of a translation request.
type TranslateInput struct {
	SourceText     string
	SourceLanguage domain.Language
	TargetLanguage domain.Language
	DocumentType   domain.DocumentType
	Purpose        domain.Purpose
	Tone           domain.Tone
	Jurisdiction   domain.Jurisdiction
	Deterministic  bool
}

// TranslationService implements the translation use cases.
type TranslationService interface {
	List(ctx context.Context, actor Actor) ([]*domain.Translation, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.Translation, error)
	Translate(ctx context.Context, actor Actor, in TranslateInput) (*domain.Translation, error)
	Revise(ctx context.Context, actor Actor, id, translatedText string) (*domain.Translation, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

// GenerateMemorandumInput is the validated body of a drafting request.
type GenerateMemorandumInput struct {
	Type          domain.MemorandumType
	Language      domain.Language
	CourtName     string
	CaseNumber    string
	CaseFacts     string
	LegalRequests string
	DefensePoints *string
	Strength      domain.Strength
	Deterministic bool
}

// MemorandumService implements the drafting use cases.
type MemorandumService interface {
	List(ctx context.Context, actor Actor) ([]*domain.Memorandum, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.Memorandum, error)
	Generate(ctx context.Context, actor Actor, in GenerateMemorandumInput) (*domain.Memorandum, error)
	Revise(ctx context.Context, actor Actor, id, content string) (*domain.Memorandum, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

// Stats summarises a user's activity for the dashboard.
type Stats struct {
	TotalTranslations  int                  `json:"totalTranslations"`
	TotalMemorandums   int                  `json:"totalMemorandums"`
	RecentTranslations []*domain.Translation `json:"recentTranslations"`
	RecentMemorandums  []*domain.Memorandum  `json:"recentMemorandums"`
}

// StatsService builds dashboard summaries.
type StatsService interface {
	Summary(ctx context.Context, actor Actor) (*Stats, error)
}
