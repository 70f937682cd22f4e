package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// PositionHandler CRUD de puestos (siempre dentro de un cliente).
type PositionHandler struct {
	uc  *usecase.PositionUseCase
	log *logger.Logger
}

// NewPositionHandler construye el handler de puestos.
func NewPositionHandler(uc *usecase.PositionUseCase, log *logger.Logger) *PositionHandler {
	return &PositionHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear puesto
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePositionRequest  true  "datos del puesto"
// @Success      201   {object}  dto.PositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/positions [post]
func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), TenantScope(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar puestos (filtro opcional por cliente)
// @Tags         positions
// @Produce      json
// @Param        clienteId  query  string  false  "ID del cliente"
// @Success      200  {array}  dto.PositionResponse
// @Router       /api/positions [get]
func (h *PositionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantScope(c), c.Query("clienteId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener puesto
// @Tags         positions
// @Produce      json
// @Param        id  path  string  true  "ID del puesto"
// @Success      200  {object}  dto.PositionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/positions/{id} [get]
func (h *PositionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), TenantScope(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar puesto
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del puesto"
// @Param        body  body  dto.UpdatePositionRequest  true  "datos a actualizar"
// @Success      200   {object}  dto.PositionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/positions/{id} [put]
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), TenantScope(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar puesto (borrado lógico)
// @Tags         positions
// @Produce      json
// @Param        id  path  string  true  "ID del puesto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/positions/{id} [delete]
func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.Context(), c.Params("id"), TenantScope(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
