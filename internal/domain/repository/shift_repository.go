package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para Shift (DIP).
//
// La unicidad (employee_id, date) tiene dos capas: el pre-chequeo
// FindConflicts (mejor mensaje de error) y el constraint UNIQUE de la DB
// (la garantía real ante carreras). Las implementaciones traducen la
// violación 23505 a domain.Conflict, nunca la dejan salir cruda.
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	Update(ctx context.Context, shift *entity.Shift, mainCompanyID *string) error
	// Delete es borrado físico; domain.NotFound si no existe en el scoping.
	Delete(ctx context.Context, id string, mainCompanyID *string) error
	GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Shift, error)

	// ListRange devuelve los turnos del rango [from, to] con detalle
	// relacional (empleado, puesto, cliente) para calendario y reportes.
	ListRange(ctx context.Context, mainCompanyID *string, from, to time.Time) ([]*entity.ShiftDetail, error)

	// FindConflicts busca turnos existentes del mismo empleado en la misma
	// fecha, considerando solo empleados activos y puestos no borrados.
	// excludeShiftID excluye el turno que se está actualizando ("" en creación).
	FindConflicts(ctx context.Context, employeeID string, date time.Time, excludeShiftID string, mainCompanyID *string) ([]*entity.ShiftDetail, error)

	// SumHoursByEmployee suma position.total_horas por empleado en el rango.
	SumHoursByEmployee(ctx context.Context, mainCompanyID *string, from, to time.Time) (map[string]decimal.Decimal, error)

	// BatchCreate inserta los turnos en una sola transacción con semántica
	// best-effort frente a carreras: las violaciones de unicidad se omiten y
	// se devuelve cuántas filas entraron; cualquier otro error aborta el lote.
	BatchCreate(ctx context.Context, shifts []*entity.Shift) (int, error)
}
