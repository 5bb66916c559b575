package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	codec       *session.Codec
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, codec *session.Codec, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, log: log}
}

// Register creates a new account and signs the browser in. Any session the
// browser already holds is replaced.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prior, _ := h.codec.Read(c.Request())
	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PriorSessionID: prior,
	}, requestMeta(c))
	if err != nil {
		return err
	}

	if err := h.codec.Write(c.Response(), res.Session.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res.User)
}

// Login authenticates a user. Any session the browser already holds is
// replaced by a fresh one.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prior, _ := h.codec.Read(c.Request())
	res, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:          req.Email,
		Password:       req.Password,
		PriorSessionID: prior,
	}, requestMeta(c))
	if err != nil {
		return err
	}

	if err := h.codec.Write(c.Response(), res.Session.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res.User)
}

// Logout destroys the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, ok := session.CurrentSession(c)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if err := h.authService.Logout(c.Request().Context(), sess, requestMeta(c)); err != nil {
		h.log.Error().Err(err).Str("session_id", sess.ID).Msg("logout failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
	}

	h.codec.Clear(c.Response())
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// CurrentUser returns the signed-in user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, user)
}
