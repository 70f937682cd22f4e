package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// EmployeeHandler CRUD de empleados del tenant.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// requireTenant devuelve el tenant del actor; error si no pertenece a ninguno
// (super_admin no crea recursos de tenant, administra tenants enteros).
func requireTenant(c *fiber.Ctx) (string, bool) {
	user := CurrentUser(c)
	if user == nil || user.MainCompanyID == nil {
		return "", false
	}
	return *user.MainCompanyID, true
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	tenant, ok := requireTenant(c)
	if !ok {
		return badRequest(c, "el usuario no pertenece a ninguna empresa")
	}
	var in dto.CreateEmployeeRequest
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
// @Summary      Listar empleados (búsqueda opcional, insensible a tildes)
// @Tags         employees
// @Produce      json
// @Param        q  query  string  false  "término de búsqueda por nombre"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantScope(c), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), TenantScope(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "datos a actualizar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), TenantScope(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar empleado (el borrado es cambio de estado)
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id"), TenantScope(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
