package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift asigna un empleado a un puesto en una fecha calendario (sin hora).
// Invariante: a lo sumo un turno por (EmployeeID, Date), respaldado por un
// constraint UNIQUE en la base de datos. Los turnos se borran físicamente.
type Shift struct {
	ID         string
	EmployeeID string
	PositionID string
	Date       time.Time // fecha calendario; la hora se trunca a 00:00
	Notes      string
	CreatedAt  time.Time
}

// ShiftDetail es un turno con los datos relacionales que la UI y los reportes
// necesitan (nombre de empleado, puesto, siglas, horas y cliente).
type ShiftDetail struct {
	Shift
	EmployeeName  string
	PositionName  string
	Siglas        string
	Color         string
	TotalHoras    decimal.Decimal // horas del puesto asignado
	ClienteID     string
	ClienteNombre string
}
