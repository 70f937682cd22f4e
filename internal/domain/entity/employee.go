package entity

import "time"

// Estados de Employee. El "borrado" de un empleado es un cambio de estado a
// inactive, nunca un DELETE de fila (los turnos históricos lo referencian).
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee es un trabajador de una MainCompany asignable a turnos.
type Employee struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Status        string // active, inactive
	MainCompanyID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
