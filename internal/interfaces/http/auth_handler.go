package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/turnos-pro/internal/application/auth"
	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// AuthHandler maneja login, logout, sesión actual y cambio de contraseña.
type AuthHandler struct {
	uc          *auth.UseCase
	store       *session.Store
	rememberTTL time.Duration
	log         *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, store *session.Store, rememberTTL time.Duration, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, store: store, rememberTTL: rememberTTL, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password, rememberMe"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}

	user, err := h.uc.Login(c.Context(), in, c.IP())
	if err != nil {
		return respondError(c, h.log, err)
	}

	// La sesión se crea recién acá: un 403 por suscripción vencida no deja
	// cookie alguna.
	sess, err := h.store.Get(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	sess.Set(sessionUserKey, user.ID)
	if in.RememberMe {
		sess.SetExpiry(h.rememberTTL)
	}
	if err := sess.Save(); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.LoginResponse{User: auth.ToUserResponse(user)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := sess.Destroy(); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario actual y estado de su empresa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	status, err := h.uc.CompanyStatus(c.Context(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MeResponse{
		User:          auth.ToUserResponse(user),
		CompanyStatus: status,
	})
}

// SetPassword godoc
// @Summary      Cambiar la propia contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPasswordRequest  true  "oldPassword, newPassword, confirmPassword"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/set-password [post]
func (h *AuthHandler) SetPassword(c *fiber.Ctx) error {
	var in dto.SetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.SetPassword(c.Context(), CurrentUser(c).ID, in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
