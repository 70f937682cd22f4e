// Package scheduling contiene los casos de uso de turnos: CRUD con detección
// de conflictos (un turno por empleado y día) y la generación del mes a
// partir del patrón del mes anterior.
package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// UseCase casos de uso de turnos. scope es el mainCompanyID de la sesión
// (nil solo para super_admin, sin filtro por tenant).
type UseCase struct {
	shifts    repository.ShiftRepository
	employees repository.EmployeeRepository
	positions repository.PositionRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso de turnos.
func NewUseCase(
	shifts repository.ShiftRepository,
	employees repository.EmployeeRepository,
	positions repository.PositionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{shifts: shifts, employees: employees, positions: positions, log: log, now: time.Now}
}

// MonthRange devuelve el primer y último día calendario del mes.
func MonthRange(year int, month time.Month) (from, to time.Time) {
	from = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, -1)
	return from, to
}

// Create da de alta un turno. La unicidad (empleado, fecha) se chequea dos
// veces: el pre-chequeo de aquí (para responder 409 con el detalle de los
// turnos que chocan) y el constraint UNIQUE de la DB como garantía final
// ante carreras (el repo traduce esa violación al mismo Conflict).
func (uc *UseCase) Create(ctx context.Context, scope *string, in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if in.EmployeeID == "" || in.PositionID == "" || in.Date == "" {
		return nil, domain.Validation("employeeId, positionId y date son requeridos")
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.Validation("date debe tener formato YYYY-MM-DD")
	}

	emp, err := uc.employees.GetByID(ctx, in.EmployeeID, scope)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.NotFound("empleado no encontrado")
	}
	if emp.Status != entity.EmployeeActive {
		return nil, domain.Validation("no se pueden asignar turnos a un empleado inactivo")
	}
	pos, err := uc.positions.GetByID(ctx, in.PositionID, scope)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.NotFound("puesto no encontrado")
	}

	if err := uc.checkConflicts(ctx, in.EmployeeID, date, "", scope); err != nil {
		return nil, err
	}

	shift := &entity.Shift{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		PositionID: in.PositionID,
		Date:       date,
		Notes:      in.Notes,
		CreatedAt:  uc.now(),
	}
	if err := uc.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}

	resp := toShiftResponse(shift)
	resp.EmployeeName = emp.Name
	resp.PositionName = pos.Name
	resp.Siglas = pos.Siglas
	resp.Color = pos.Color
	resp.TotalHoras = pos.TotalHoras.String()
	resp.ClienteID = pos.ClienteID
	return resp, nil
}

// Update modifica un turno existente con la misma detección de conflictos,
// excluyendo de la búsqueda el propio turno que se edita.
func (uc *UseCase) Update(ctx context.Context, id string, scope *string, in dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := uc.shifts.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.NotFound("turno no encontrado")
	}

	if in.EmployeeID != "" && in.EmployeeID != shift.EmployeeID {
		emp, err := uc.employees.GetByID(ctx, in.EmployeeID, scope)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, domain.NotFound("empleado no encontrado")
		}
		if emp.Status != entity.EmployeeActive {
			return nil, domain.Validation("no se pueden asignar turnos a un empleado inactivo")
		}
		shift.EmployeeID = in.EmployeeID
	}
	if in.PositionID != "" && in.PositionID != shift.PositionID {
		pos, err := uc.positions.GetByID(ctx, in.PositionID, scope)
		if err != nil {
			return nil, err
		}
		if pos == nil {
			return nil, domain.NotFound("puesto no encontrado")
		}
		shift.PositionID = in.PositionID
	}
	if in.Date != "" {
		date, err := dto.ParseDate(in.Date)
		if err != nil {
			return nil, domain.Validation("date debe tener formato YYYY-MM-DD")
		}
		shift.Date = date
	}
	shift.Notes = in.Notes

	if err := uc.checkConflicts(ctx, shift.EmployeeID, shift.Date, shift.ID, scope); err != nil {
		return nil, err
	}
	if err := uc.shifts.Update(ctx, shift, scope); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// Delete borra físicamente un turno; domain.NotFound si no existe en el scoping.
func (uc *UseCase) Delete(ctx context.Context, id string, scope *string) error {
	return uc.shifts.Delete(ctx, id, scope)
}

// ListRange lista los turnos del rango con detalle relacional.
func (uc *UseCase) ListRange(ctx context.Context, scope *string, from, to time.Time) ([]dto.ShiftResponse, error) {
	list, err := uc.shifts.ListRange(ctx, scope, from, to)
	if err != nil {
		return nil, err
	}
	return toShiftResponses(list), nil
}

// checkConflicts ejecuta el pre-chequeo y arma el 409 con el detalle.
func (uc *UseCase) checkConflicts(ctx context.Context, employeeID string, date time.Time, excludeID string, scope *string) error {
	conflicts, err := uc.shifts.FindConflicts(ctx, employeeID, date, excludeID, scope)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return domain.Conflict("el empleado ya tiene un turno asignado ese día", toShiftResponses(conflicts))
	}
	return nil
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		PositionID: s.PositionID,
		Date:       dto.FormatDate(s.Date),
		Notes:      s.Notes,
	}
}

func toShiftResponses(list []*entity.ShiftDetail) []dto.ShiftResponse {
	items := make([]dto.ShiftResponse, 0, len(list))
	for _, d := range list {
		r := toShiftResponse(&d.Shift)
		r.EmployeeName = d.EmployeeName
		r.PositionName = d.PositionName
		r.Siglas = d.Siglas
		r.Color = d.Color
		r.TotalHoras = d.TotalHoras.String()
		r.ClienteID = d.ClienteID
		r.ClienteNombre = d.ClienteNombre
		items = append(items, *r)
	}
	return items
}
