package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// SentinelHandler operaciones de plataforma del sentinel zone: provisión y
// administración de tenants, reseteo del admin y serie de logins. Todas las
// rutas exigen super_admin (lo garantiza la tabla de permisos en el router).
type SentinelHandler struct {
	companies *usecase.CompanyUseCase
	logins    *usecase.LoginHistoryUseCase
	log       *logger.Logger
}

// NewSentinelHandler construye el handler del sentinel zone.
func NewSentinelHandler(companies *usecase.CompanyUseCase, logins *usecase.LoginHistoryUseCase, log *logger.Logger) *SentinelHandler {
	return &SentinelHandler{companies: companies, logins: logins, log: log}
}

// Provision godoc
// @Summary      Provisionar empresa + primer admin (transaccional)
// @Tags         sentinelzone
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMainCompanyRequest  true  "datos de la empresa y username del primer admin"
// @Success      201   {object}  dto.ProvisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sentinelzone/main-companies [post]
func (h *SentinelHandler) Provision(c *fiber.Ctx) error {
	var in dto.CreateMainCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.companies.Provision(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas con su estado de suscripción
// @Tags         sentinelzone
// @Produce      json
// @Success      200  {array}  dto.MainCompanyResponse
// @Router       /api/sentinelzone/main-companies [get]
func (h *SentinelHandler) List(c *fiber.Ctx) error {
	out, err := h.companies.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa
// @Tags         sentinelzone
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MainCompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sentinelzone/main-companies/{id} [get]
func (h *SentinelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.companies.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa (incluye facturación e interruptor manual)
// @Tags         sentinelzone
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la empresa"
// @Param        body  body  dto.UpdateMainCompanyRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.MainCompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sentinelzone/main-companies/{id} [put]
func (h *SentinelHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMainCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.companies.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar empresa (borrado lógico)
// @Tags         sentinelzone
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sentinelzone/main-companies/{id} [delete]
func (h *SentinelHandler) Delete(c *fiber.Ctx) error {
	if err := h.companies.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetAdminPassword godoc
// @Summary      Resetear la contraseña del primer admin del tenant
// @Tags         sentinelzone
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sentinelzone/main-companies/{id}/reset-admin-password [put]
func (h *SentinelHandler) ResetAdminPassword(c *fiber.Ctx) error {
	out, err := h.companies.ResetAdminPassword(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// LoginHistory godoc
// @Summary      Serie diaria de logins para el dashboard
// @Tags         sentinelzone
// @Produce      json
// @Param        period     query  string  true   "day, week, month, year o custom"
// @Param        startDate  query  string  false  "YYYY-MM-DD (con period=custom)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (con period=custom)"
// @Success      200  {object}  dto.LoginHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sentinelzone/login-history [get]
func (h *SentinelHandler) LoginHistory(c *fiber.Ctx) error {
	out, err := h.logins.Series(c.Context(), c.Query("period"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
