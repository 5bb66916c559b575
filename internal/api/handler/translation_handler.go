package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

const translationUnavailable = "AI translation service is temporarily unavailable. Please try again later."

// TranslationHandler handles HTTP requests for translations.
type TranslationHandler struct {
	service ports.TranslationService
}

func NewTranslationHandler(service ports.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

// List handles GET /api/translations.
//
// @Summary      List my translations
// @Tags         translations
// @Produce      json
// @Success      200  {array}   domain.Translation
// @Failure      401  {object}  errorResponse
// @Router       /api/translations [get]
func (h *TranslationHandler) List(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/translations/:id.
//
// @Summary      Get a translation
// @Tags         translations
// @Produce      json
// @Param        id   path      string  true  "Translation id"
// @Success      200  {object}  domain.Translation
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/translations/{id} [get]
func (h *TranslationHandler) Get(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	t, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Translation not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Translate handles POST /api/translate.
//
// @Summary      Translate a legal text
// @Tags         translations
// @Accept       json
// @Produce      json
// @Param        body  body      translateRequest  true  "Text and translation options"
// @Success      200   {object}  domain.Translation
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/translate [post]
func (h *TranslationHandler) Translate(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req translateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.service.Translate(c.Request().Context(), actor, ports.TranslateInput{
		SourceText:     req.SourceText,
		SourceLanguage: domain.Language(req.SourceLanguage),
		TargetLanguage: domain.Language(req.TargetLanguage),
		DocumentType:   domain.DocumentType(req.DocumentType),
		Purpose:        domain.Purpose(req.Purpose),
		Tone:           domain.Tone(req.Tone),
		Jurisdiction:   domain.Jurisdiction(req.Jurisdiction),
		Deterministic:  deterministic(req.Deterministic),
	})
	if err != nil {
		return llmError(err, translationUnavailable)
	}
	return c.JSON(http.StatusOK, t)
}

// Revise handles POST /api/translations/:id/versions.
//
// @Summary      Save an edited translation as a new version
// @Tags         translations
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Translation id"
// @Param        body  body      reviseTranslationRequest  true  "Edited text"
// @Success      200   {object}  domain.Translation
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/translations/{id}/versions [post]
func (h *TranslationHandler) Revise(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req reviseTranslationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.service.Revise(c.Request().Context(), actor, c.Param("id"), req.TranslatedText)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Translation not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/translations/:id.
//
// @Summary      Delete a translation
// @Tags         translations
// @Param        id   path  string  true  "Translation id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/translations/{id} [delete]
func (h *TranslationHandler) Delete(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), actor, c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Translation not found")
	}
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// llmError gives provider failures a route-specific 503 message. Everything
// else, including the not-configured case, goes to the error handler as is.
func llmError(err error, unavailable string) error {
	if errors.Is(err, domain.ErrLLMUnavailable) {
		return &echo.HTTPError{Code: http.StatusServiceUnavailable, Message: unavailable, Internal: err}
	}
	return err
}
