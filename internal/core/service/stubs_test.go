package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

// ---- User repository ----

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// ---- Session store ----

type stubSessionStore struct {
	mu         sync.Mutex
	sessions   map[string]*domain.Session
	seq        int
	destroyErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, userID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	sess := &domain.Session{ID: fmt.Sprintf("sess-%d", s.seq), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Touch(context.Context, string) error { return nil }

func (s *stubSessionStore) Destroy(_ context.Context, id string) error {
	if s.destroyErr != nil {
		return s.destroyErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// ---- Auditor ----

type recordingAuditor struct {
	mu      sync.Mutex
	entries []ports.AuditInput
}

func (a *recordingAuditor) Record(_ context.Context, in ports.AuditInput) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, in)
}

func (a *recordingAuditor) actions() []domain.AuditAction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

// ---- Completer ----

type stubCompleter struct {
	configured bool
	output     string
	err        error

	calls      int
	lastSystem string
	lastUser   string
	lastOpts   ports.CompletionOptions
}

func (c *stubCompleter) Configured() bool { return c.configured }

func (c *stubCompleter) Complete(_ context.Context, system, user string, opts ports.CompletionOptions) (string, error) {
	c.calls++
	c.lastSystem, c.lastUser, c.lastOpts = system, user, opts
	if c.err != nil {
		return "", c.err
	}
	return c.output, nil
}

// ---- Document repositories ----

type stubTranslationRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Translation
	seq   int
}

func newStubTranslationRepo() *stubTranslationRepo {
	return &stubTranslationRepo{items: make(map[string]*domain.Translation)}
}

func (r *stubTranslationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Translation{}
	for _, t := range r.items {
		if t.UserID == userID {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubTranslationRepo) Get(_ context.Context, id string) (*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (r *stubTranslationRepo) Create(_ context.Context, t *domain.Translation) (*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := *t
	c.ID = fmt.Sprintf("tr-%d", r.seq)
	c.CreatedAt = time.Unix(int64(r.seq), 0).UTC()
	c.Versions = []domain.TranslationVersion{}
	r.items[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubTranslationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubTranslationRepo) AppendVersion(_ context.Context, id, text string) (*domain.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.TranslatedText = text
	t.Versions = append(t.Versions, domain.TranslationVersion{ID: fmt.Sprintf("v-%d", len(t.Versions)+1), TranslatedText: text})
	c := *t
	return &c, nil
}

type stubMemorandumRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Memorandum
	seq   int
}

func newStubMemorandumRepo() *stubMemorandumRepo {
	return &stubMemorandumRepo{items: make(map[string]*domain.Memorandum)}
}

func (r *stubMemorandumRepo) ListByUser(_ context.Context, userID string) ([]*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Memorandum{}
	for _, m := range r.items {
		if m.UserID == userID {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMemorandumRepo) Get(_ context.Context, id string) (*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *m
	return &c, nil
}

func (r *stubMemorandumRepo) Create(_ context.Context, m *domain.Memorandum) (*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := *m
	c.ID = fmt.Sprintf("memo-%d", r.seq)
	c.CreatedAt = time.Unix(int64(r.seq), 0).UTC()
	c.Versions = []domain.MemorandumVersion{}
	r.items[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubMemorandumRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubMemorandumRepo) AppendVersion(_ context.Context, id, content string) (*domain.Memorandum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.GeneratedContent = content
	m.Versions = append(m.Versions, domain.MemorandumVersion{ID: fmt.Sprintf("v-%d", len(m.Versions)+1), Content: content})
	c := *m
	return &c, nil
}

// ---- Helpers ----

func actorFor(id string, role domain.Role) ports.Actor {
	return ports.Actor{
		User: &domain.User{ID: id, Email: id + "@example.com", Role: role},
		Meta: domain.RequestMeta{IPAddress: "203.0.113.7", UserAgent: "test-agent"},
	}
}
