package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /api/settings. No session is required.
//
// @Summary      Site branding
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.SiteSettings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Update handles PUT /api/settings. Only the fields present in the body change.
//
// @Summary      Update site branding
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      updateSettingsRequest  true  "Fields to change"
// @Success      200   {object}  domain.SiteSettings
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req updateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s, err := h.service.Update(c.Request().Context(), actor, domain.SettingsPatch{
		LogoURL:     req.LogoURL,
		AppTitle:    req.AppTitle,
		AppSubtitle: req.AppSubtitle,
		FooterText:  req.FooterText,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}
