package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/scheduling"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

var errInvalidRange = domain.Validation("rango inválido: usar month+year o startDate+endDate (YYYY-MM-DD)")

// ShiftHandler CRUD de turnos, listado por rango y generación mensual.
type ShiftHandler struct {
	uc  *scheduling.UseCase
	log *logger.Logger
}

// NewShiftHandler construye el handler de turnos.
func NewShiftHandler(uc *scheduling.UseCase, log *logger.Logger) *ShiftHandler {
	return &ShiftHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear turno
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShiftRequest  true  "employeeId, positionId, date"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "el empleado ya tiene un turno ese día; conflicts trae el detalle"
// @Router       /api/shifts [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
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
// @Summary      Listar turnos de un mes o de un rango de fechas
// @Tags         shifts
// @Produce      json
// @Param        month      query  int     false  "mes 1..12 (con year)"
// @Param        year       query  int     false  "año (con month)"
// @Param        startDate  query  string  false  "YYYY-MM-DD (con endDate)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (con startDate)"
// @Success      200  {array}  dto.ShiftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	from, to, err := parseShiftRange(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.ListRange(c.Context(), TenantScope(c), from, to)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar turno
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del turno"
// @Param        body  body  dto.UpdateShiftRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [put]
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShiftRequest
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
// @Summary      Borrar turno
// @Tags         shifts
// @Produce      json
// @Param        id  path  string  true  "ID del turno"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), TenantScope(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Generate godoc
// @Summary      Generar los turnos del mes copiando el patrón del mes anterior
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateShiftsRequest  true  "month, year"
// @Success      200   {object}  dto.GenerateShiftsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shifts/generate-from-previous-month [post]
func (h *ShiftHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateShiftsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	count, err := h.uc.GenerateFromPreviousMonth(c.Context(), TenantScope(c), in.Month, in.Year)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.GenerateShiftsResponse{Count: count})
}

// parseShiftRange resuelve el rango pedido: month+year tienen prioridad; si
// no, startDate+endDate; sin nada, el mes calendario actual.
func parseShiftRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if month != 0 || year != 0 {
		if month < 1 || month > 12 || year < 2000 || year > 2100 {
			return time.Time{}, time.Time{}, errInvalidRange
		}
		from, to := scheduling.MonthRange(year, time.Month(month))
		return from, to, nil
	}

	fromStr, toStr := c.Query("startDate"), c.Query("endDate")
	if fromStr != "" || toStr != "" {
		from, err := dto.ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidRange
		}
		to, err := dto.ParseDate(toStr)
		if err != nil || to.Before(from) {
			return time.Time{}, time.Time{}, errInvalidRange
		}
		return from, to, nil
	}

	now := time.Now().UTC()
	from, to := scheduling.MonthRange(now.Year(), now.Month())
	return from, to, nil
}
