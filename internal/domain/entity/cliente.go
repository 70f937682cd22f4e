package entity

import "time"

// Cliente es un sitio de cliente de un tenant (donde se prestan los turnos).
// Posee Positions. Borrado lógico vía DeletedAt.
type Cliente struct {
	ID             string
	Empresa        string
	Direccion      string
	Localidad      string
	NombreContacto string
	Telefono       string
	Email          string
	MainCompanyID  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}
