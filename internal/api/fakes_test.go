package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

// In-memory adapters used to drive the full router in scenario tests.

type memUsers struct {
	mu    sync.Mutex
	byID  map[string]domain.User
	count int
}

func (r *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, domain.ErrEmailTaken
		}
	}
	r.count++
	stored := *u
	stored.ID = fmt.Sprintf("user-%d", r.count)
	r.byID[stored.ID] = stored
	return &stored, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUsers) List(context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, &u)
	}
	return out, nil
}

func (r *memUsers) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	r.byID[id] = u
	return &u, nil
}

type memSessions struct {
	mu    sync.Mutex
	byID  map[string]domain.Session
	count int
}

func (s *memSessions) Create(_ context.Context, userID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	sess := domain.Session{ID: fmt.Sprintf("sess-%d", s.count), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	s.byID[sess.ID] = sess
	return &sess, nil
}

func (s *memSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *memSessions) Touch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *memSessions) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

type memTranslations struct {
	mu    sync.Mutex
	byID  map[string]*domain.Translation
	count int
}

func (r *memTranslations) ListByUser(_ context.Context, userID string) ([]*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Translation{}
	for _, t := range r.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTranslations) Get(_ context.Context, id string) (*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (r *memTranslations) Create(_ context.Context, t *domain.Translation) (*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	t.ID = fmt.Sprintf("tr-%d", r.count)
	t.CreatedAt = time.Unix(int64(r.count), 0)
	t.Versions = []domain.TranslationVersion{}
	r.byID[t.ID] = t
	return t, nil
}

func (r *memTranslations) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memTranslations) AppendVersion(_ context.Context, id, text string) (*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Versions = append(t.Versions, domain.TranslationVersion{ID: fmt.Sprintf("%s-v%d", id, len(t.Versions)+1), TranslatedText: text})
	t.TranslatedText = text
	return t, nil
}

type memMemorandums struct {
	mu    sync.Mutex
	byID  map[string]*domain.Memorandum
	count int
}

func (r *memMemorandums) ListByUser(_ context.Context, userID string) ([]*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Memorandum{}
	for _, m := range r.byID {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memMemorandums) Get(_ context.Context, id string) (*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (r *memMemorandums) Create(_ context.Context, m *domain.Memorandum) (*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	m.ID = fmt.Sprintf("memo-%d", r.count)
	m.CreatedAt = time.Unix(int64(r.count), 0)
	m.Versions = []domain.MemorandumVersion{}
	r.byID[m.ID] = m
	return m, nil
}

func (r *memMemorandums) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memMemorandums) AppendVersion(_ context.Context, id, content string) (*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.Versions = append(m.Versions, domain.MemorandumVersion{ID: fmt.Sprintf("%s-v%d", id, len(m.Versions)+1), Content: content})
	m.GeneratedContent = content
	return m, nil
}

type memAudit struct {
	mu      sync.Mutex
	entries []*domain.AuditLogEntry
}

func (r *memAudit) Insert(_ context.Context, e *domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = fmt.Sprintf("audit-%d", len(r.entries)+1)
	r.entries = append(r.entries, e)
	return nil
}

func (r *memAudit) List(_ context.Context, limit int) ([]*domain.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.AuditLogEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

func (r *memAudit) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type memSettings struct {
	mu      sync.Mutex
	current *domain.SiteSettings
}

func (r *memSettings) Get(context.Context) (*domain.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil, domain.ErrNotFound
	}
	s := *r.current
	return &s, nil
}

func (r *memSettings) Upsert(_ context.Context, patch domain.SettingsPatch, now time.Time) (*domain.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		r.current = domain.DefaultSiteSettings()
	}
	if patch.LogoURL != nil {
		r.current.LogoURL = patch.LogoURL
	}
	if patch.AppTitle != nil {
		r.current.AppTitle = patch.AppTitle
	}
	if patch.AppSubtitle != nil {
		r.current.AppSubtitle = patch.AppSubtitle
	}
	if patch.FooterText != nil {
		r.current.FooterText = patch.FooterText
	}
	r.current.UpdatedAt = &now
	s := *r.current
	return &s, nil
}

// fixedCompleter returns the same output for every call.
type fixedCompleter struct {
	configured bool
	output     string
	calls      int
}

func (f *fixedCompleter) Configured() bool { return f.configured }

func (f *fixedCompleter) Complete(context.Context, string, string, ports.CompletionOptions) (string, error) {
	if !f.configured {
		return "", domain.ErrLLMNotConfigured
	}
	f.calls++
	return f.output, nil
}
