package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

// AdminHandler serves the admin-only user management and audit routes.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Users handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole handles PATCH /api/admin/users/:id/role.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}

	user, err := h.service.UpdateRole(c.Request().Context(), actor, c.Param("id"), role)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// AuditLogs handles GET /api/admin/audit-logs.
//
// @Summary      Recent audit entries
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries (default 100, max 500)"
// @Success      200    {array}   domain.AuditLogEntry
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c echo.Context) error {
	// Unparsable limits fall back to the default.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.AuditLogs(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
