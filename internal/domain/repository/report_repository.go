package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter filtros del reporte de horas por empleado. MainCompanyID nil
// solo para super_admin (sin scoping); From/To nil = sin acotar por fecha;
// EmployeeID y ClienteID vacíos = todos.
type ReportFilter struct {
	MainCompanyID *string
	From          *time.Time
	To            *time.Time
	EmployeeID    string
	ClienteID     string
}

// EmployeeHoursRow fila cruda del agregado turnos→empleados→puestos→clientes.
type EmployeeHoursRow struct {
	EmployeeID   string
	EmployeeName string
	TotalShifts  int
	TotalHoras   decimal.Decimal
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only.
type ReportRepository interface {
	// EmployeeHours agrega horas y cantidad de turnos por empleado en el
	// rango, ordenado por horas descendente.
	EmployeeHours(ctx context.Context, f ReportFilter) ([]EmployeeHoursRow, error)
}
