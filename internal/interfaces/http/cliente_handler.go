package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// ClienteHandler CRUD de sitios de cliente del tenant.
type ClienteHandler struct {
	uc  *usecase.ClienteUseCase
	log *logger.Logger
}

// NewClienteHandler construye el handler de clientes.
func NewClienteHandler(uc *usecase.ClienteUseCase, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	tenant, ok := requireTenant(c)
	if !ok {
		return badRequest(c, "el usuario no pertenece a ninguna empresa")
	}
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), tenant, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes (búsqueda opcional, insensible a tildes)
// @Tags         clientes
// @Produce      json
// @Param        q  query  string  false  "término de búsqueda por empresa"
// @Success      200  {array}  dto.ClienteResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantScope(c), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         clientes
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), TenantScope(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del cliente"
// @Param        body  body  dto.UpdateClienteRequest  true  "datos a actualizar"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
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
// @Summary      Borrar cliente (borrado lógico)
// @Tags         clientes
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.Context(), c.Params("id"), TenantScope(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
