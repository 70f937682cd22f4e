package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position es un puesto de trabajo dentro de un Cliente. TotalHoras son las
// horas que computa un turno en ese puesto (decimal: hay medias horas).
// Siglas es el código corto que se pinta en las celdas del calendario.
// Borrado lógico vía DeletedAt.
type Position struct {
	ID          string
	Name        string // único
	Siglas      string
	Department  string
	Description string
	Color       string // hex, ej. #1976D2
	TotalHoras  decimal.Decimal
	ClienteID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
