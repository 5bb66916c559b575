package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

const draftingUnavailable = "AI drafting service is temporarily unavailable. Please try again later."

// MemorandumHandler handles HTTP requests for drafted memorandums.
type MemorandumHandler struct {
	service ports.MemorandumService
}

func NewMemorandumHandler(service ports.MemorandumService) *MemorandumHandler {
	return &MemorandumHandler{service: service}
}

// List handles GET /api/memorandums.
//
// @Summary      List my memorandums
// @Tags         memorandums
// @Produce      json
// @Success      200  {array}   domain.Memorandum
// @Failure      401  {object}  errorResponse
// @Router       /api/memorandums [get]
func (h *MemorandumHandler) List(c echo.Context) error {
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

// Get handles GET /api/memorandums/:id.
//
// @Summary      Get a memorandum
// @Tags         memorandums
// @Produce      json
// @Param        id   path      string  true  "Memorandum id"
// @Success      200  {object}  domain.Memorandum
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/memorandums/{id} [get]
func (h *MemorandumHandler) Get(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	m, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Memorandum not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Generate handles POST /api/memorandums/generate.
//
// @Summary      Draft a memorandum
// @Tags         memorandums
// @Accept       json
// @Produce      json
// @Param        body  body      generateMemorandumRequest  true  "Case details"
// @Success      200   {object}  domain.Memorandum
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/memorandums/generate [post]
func (h *MemorandumHandler) Generate(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req generateMemorandumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.Generate(c.Request().Context(), actor, ports.GenerateMemorandumInput{
		Type:          domain.MemorandumType(req.Type),
		Language:      domain.Language(req.Language),
		CourtName:     req.CourtName,
		CaseNumber:    req.CaseNumber,
		CaseFacts:     req.CaseFacts,
		LegalRequests: req.LegalRequests,
		DefensePoints: req.DefensePoints,
		Strength:      domain.Strength(req.Strength),
		Deterministic: deterministic(req.Deterministic),
	})
	if err != nil {
		return llmError(err, draftingUnavailable)
	}
	return c.JSON(http.StatusOK, m)
}

// Revise handles POST /api/memorandums/:id/versions.
//
// @Summary      Save an edited memorandum as a new version
// @Tags         memorandums
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Memorandum id"
// @Param        body  body      reviseMemorandumRequest  true  "Edited content"
// @Success      200   {object}  domain.Memorandum
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/memorandums/{id}/versions [post]
func (h *MemorandumHandler) Revise(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req reviseMemorandumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.Revise(c.Request().Context(), actor, c.Param("id"), req.Content)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Memorandum not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/memorandums/:id.
//
// @Summary      Delete a memorandum
// @Tags         memorandums
// @Param        id   path  string  true  "Memorandum id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/memorandums/{id} [delete]
func (h *MemorandumHandler) Delete(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), actor, c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Memorandum not found")
	}
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
