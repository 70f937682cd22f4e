package repository

import (
	"context"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
// mainCompanyID nil significa "sin scoping por tenant" y solo lo pasa un
// llamador verificado como super_admin; cualquier otro caller debe scopearlo.
type UserRepository interface {
	// Create devuelve domain.Conflict si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, mainCompanyID *string) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete es borrado físico; devuelve domain.NotFound si la fila no existe
	// dentro del scoping dado.
	Delete(ctx context.Context, id string, mainCompanyID *string) error
	// FirstAdminByCompany devuelve el admin más antiguo del tenant (el que se
	// provisionó con la empresa); nil si no hay.
	FirstAdminByCompany(ctx context.Context, mainCompanyID string) (*entity.User, error)
}
