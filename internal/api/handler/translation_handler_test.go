package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

type stubTranslationService struct {
	translateFn func(ctx context.Context, actor ports.Actor, in ports.TranslateInput) (*domain.Translation, error)
	getFn       func(ctx context.Context, actor ports.Actor, id string) (*domain.Translation, error)
	deleteFn    func(ctx context.Context, actor ports.Actor, id string) error
}

func (s *stubTranslationService) List(context.Context, ports.Actor) ([]*domain.Translation, error) {
	return []*domain.Translation{}, nil
}

func (s *stubTranslationService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Translation, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubTranslationService) Translate(ctx context.Context, actor ports.Actor, in ports.TranslateInput) (*domain.Translation, error) {
	return s.translateFn(ctx, actor, in)
}

func (s *stubTranslationService) Revise(context.Context, ports.Actor, string, string) (*domain.Translation, error) {
	return nil, domain.ErrNotFound
}

func (s *stubTranslationService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func withUser(c echo.Context, user *domain.User) {
	session.Set(c, &session.Identity{
		Session: &domain.Session{ID: "sess-" + user.ID, UserID: user.ID},
		User:    user,
	})
}

const validTranslateBody = `{"sourceText":"نص قانوني","sourceLanguage":"ar","targetLanguage":"en","documentType":"contract","purpose":"court","tone":"formal","jurisdiction":"qatar"}`

func TestTranslationHandler_Translate_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTranslationService{
		translateFn: func(ctx context.Context, actor ports.Actor, in ports.TranslateInput) (*domain.Translation, error) {
			if actor.User.ID != "user-1" {
				t.Fatalf("unexpected actor %+v", actor.User)
			}
			if !in.Deterministic {
				t.Fatal("deterministic must default to true")
			}
			if in.SourceLanguage != domain.LanguageArabic || in.Jurisdiction != domain.JurisdictionQatar {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.Translation{ID: "tr-1", UserID: actor.User.ID, TranslatedText: "legal text"}, nil
		},
	}
	h := NewTranslationHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/translate", validTranslateBody), rec)
	withUser(c, &domain.User{ID: "user-1", Role: domain.RoleUser})

	if err := h.Translate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.Translation
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "tr-1" || resp.TranslatedText != "legal text" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestTranslationHandler_Translate_ExplicitNonDeterministic(t *testing.T) {
	e := newTestEcho()
	stub := &stubTranslationService{
		translateFn: func(_ context.Context, _ ports.Actor, in ports.TranslateInput) (*domain.Translation, error) {
			if in.Deterministic {
				t.Fatal("expected deterministic=false to be honoured")
			}
			return &domain.Translation{ID: "tr-1"}, nil
		},
	}
	h := NewTranslationHandler(stub)

	body := `{"sourceText":"x","sourceLanguage":"en","targetLanguage":"ar","documentType":"contract","purpose":"client","tone":"concise","jurisdiction":"gcc","deterministic":false}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/translate", body), httptest.NewRecorder())
	withUser(c, &domain.User{ID: "user-1"})

	if err := h.Translate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestTranslationHandler_Translate_Validation(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"same languages", `{"sourceText":"x","sourceLanguage":"ar","targetLanguage":"ar","documentType":"contract","purpose":"court","tone":"formal","jurisdiction":"qatar"}`, "targetLanguage"},
		{"unknown language", `{"sourceText":"x","sourceLanguage":"fr","targetLanguage":"en","documentType":"contract","purpose":"court","tone":"formal","jurisdiction":"qatar"}`, "sourceLanguage"},
		{"missing text", `{"sourceLanguage":"ar","targetLanguage":"en","documentType":"contract","purpose":"court","tone":"formal","jurisdiction":"qatar"}`, "sourceText"},
		{"unknown tone", `{"sourceText":"x","sourceLanguage":"ar","targetLanguage":"en","documentType":"contract","purpose":"court","tone":"casual","jurisdiction":"qatar"}`, "tone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			h := NewTranslationHandler(&stubTranslationService{
				translateFn: func(context.Context, ports.Actor, ports.TranslateInput) (*domain.Translation, error) {
					t.Fatal("service must not be called")
					return nil, nil
				},
			})

			c := e.NewContext(jsonRequest(http.MethodPost, "/api/translate", tc.body), httptest.NewRecorder())
			withUser(c, &domain.User{ID: "user-1"})

			var ve *domain.ValidationError
			if err := h.Translate(c); !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Fields[0].Field != tc.field {
				t.Fatalf("expected %s to be rejected, got %+v", tc.field, ve.Fields)
			}
		})
	}
}

func TestTranslationHandler_Translate_LLMErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"unavailable", fmt.Errorf("translate: %w", fmt.Errorf("%w: timeout", domain.ErrLLMUnavailable)), translationUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			h := NewTranslationHandler(&stubTranslationService{
				translateFn: func(context.Context, ports.Actor, ports.TranslateInput) (*domain.Translation, error) {
					return nil, tc.err
				},
			})

			c := e.NewContext(jsonRequest(http.MethodPost, "/api/translate", validTranslateBody), httptest.NewRecorder())
			withUser(c, &domain.User{ID: "user-1"})

			var he *echo.HTTPError
			if err := h.Translate(c); !errors.As(err, &he) {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if he.Code != http.StatusServiceUnavailable || he.Message != tc.wantMsg {
				t.Fatalf("unexpected error %d %v", he.Code, he.Message)
			}
		})
	}
}

func TestTranslationHandler_Translate_NotConfiguredPassesThrough(t *testing.T) {
	e := newTestEcho()
	h := NewTranslationHandler(&stubTranslationService{
		translateFn: func(context.Context, ports.Actor, ports.TranslateInput) (*domain.Translation, error) {
			return nil, domain.ErrLLMNotConfigured
		},
	})

	c := e.NewContext(jsonRequest(http.MethodPost, "/api/translate", validTranslateBody), httptest.NewRecorder())
	withUser(c, &domain.User{ID: "user-1"})

	if err := h.Translate(c); !errors.Is(err, domain.ErrLLMNotConfigured) {
		t.Fatalf("expected ErrLLMNotConfigured, got %v", err)
	}
}

func TestTranslationHandler_Get_NotOwned(t *testing.T) {
	e := newTestEcho()
	h := NewTranslationHandler(&stubTranslationService{
		getFn: func(_ context.Context, _ ports.Actor, id string) (*domain.Translation, error) {
			if id != "tr-9" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil, domain.ErrNotFound
		},
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/translations/tr-9", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("tr-9")
	withUser(c, &domain.User{ID: "user-2"})

	var he *echo.HTTPError
	if err := h.Get(c); !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestTranslationHandler_Delete(t *testing.T) {
	e := newTestEcho()
	var deleted string
	h := NewTranslationHandler(&stubTranslationService{
		deleteFn: func(_ context.Context, _ ports.Actor, id string) error {
			deleted = id
			return nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/translations/tr-1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("tr-1")
	withUser(c, &domain.User{ID: "user-1"})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != "tr-1" {
		t.Fatalf("expected 204 for tr-1, got %d %q", rec.Code, deleted)
	}
}

func TestTranslationHandler_RequiresUser(t *testing.T) {
	e := newTestEcho()
	h := NewTranslationHandler(&stubTranslationService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/translations", nil), httptest.NewRecorder())
	if err := h.List(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
