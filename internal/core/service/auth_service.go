package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
	"github.com/lexbridge/legal-assistant/internal/pkg/metrics"
)

const (
	bcryptCost        = 12
	minPasswordLength = 6
	// bcrypt only accepts inputs up to 72 bytes.
	maxPasswordBytes  = 72
)

func errPasswordTooLong() error {
	return domain.NewValidationError("password", "Password must be at most 72 bytes")
}

// dummyHash is compared against for unknown emails so a failed login costs the
// same whether or not the account exists.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	return h
})

// AuthService implements registration, login and session resolution.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	audit    ports.Auditor
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, audit ports.Auditor, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, audit: audit, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput, meta domain.RequestMeta) (*ports.AuthResult, error) {
	email := normalizeEmail(in.Email)
	switch {
	case email == "":
		return nil, domain.NewValidationError("email", "Invalid email")
	case len(in.Password) < minPasswordLength:
		return nil, domain.NewValidationError("password", "Password must be at least 6 characters")
	case len(in.Password) > maxPasswordBytes:
		return nil, errPasswordTooLong()
	case strings.TrimSpace(in.FirstName) == "":
		return nil, domain.NewValidationError("firstName", "First name is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errPasswordTooLong()
	}
	if err != nil {
		return nil, fmt.Errorf("register: hash: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     in.LastName,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
			return nil, err
		}
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	s.destroyPrior(ctx, in.PriorSessionID)

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("register: create session: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	s.audit.Record(ctx, ports.AuditInput{
		UserID:    user.ID,
		UserEmail: user.Email,
		Action:    domain.ActionRegister,
		Meta:      meta,
	})
	s.log.Info().Str("user_id", user.ID).Msg("user registered")

	return &ports.AuthResult{User: user, Session: sess}, nil
}

func (s *AuthService) Login(ctx context.Context, in ports.LoginInput, meta domain.RequestMeta) (*ports.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(in.Password))
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	case err != nil:
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("login: lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	s.destroyPrior(ctx, in.PriorSessionID)

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: create session: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	s.audit.Record(ctx, ports.AuditInput{
		UserID:    user.ID,
		UserEmail: user.Email,
		Action:    domain.ActionLogin,
		Meta:      meta,
	})

	return &ports.AuthResult{User: user, Session: sess}, nil
}

func (s *AuthService) Logout(ctx context.Context, sess *domain.Session, meta domain.RequestMeta) error {
	if sess == nil {
		return nil
	}

	var email string
	user, err := s.users.FindByID(ctx, sess.UserID)
	if err == nil {
		email = user.Email
	}

	if err := s.sessions.Destroy(ctx, sess.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if user != nil {
		s.audit.Record(ctx, ports.AuditInput{
			UserID:    user.ID,
			UserEmail: email,
			Action:    domain.ActionLogout,
			Meta:      meta,
		})
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, sess *domain.Session) (*domain.User, error) {
	if sess == nil || sess.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		if derr := s.sessions.Destroy(ctx, sess.ID); derr != nil {
			s.log.Warn().Err(derr).Str("user_id", sess.UserID).Msg("failed to destroy orphaned session")
		}
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// destroyPrior drops the session a browser held before authenticating, so a
// session id issued earlier is never carried into the new login.
func (s *AuthService) destroyPrior(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := s.sessions.Destroy(ctx, id); err != nil {
		s.log.Warn().Err(err).Msg("failed to destroy prior session")
	}
}
