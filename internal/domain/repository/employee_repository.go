package repository

import (
	"context"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// El borrado de empleados es un cambio de estado a inactive, nunca DELETE.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Employee, error)
	// List filtra por tenant y opcionalmente por término de búsqueda ya
	// normalizado (ver pkg/normalize) contra name_search.
	List(ctx context.Context, mainCompanyID *string, search string) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee, mainCompanyID *string) error
	// SetStatus cambia active/inactive; devuelve domain.NotFound si la fila no
	// existe dentro del scoping dado.
	SetStatus(ctx context.Context, id, status string, mainCompanyID *string) error
}
