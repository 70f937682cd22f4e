package repository

import (
	"context"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
// Borrado lógico vía deleted_at; las consultas excluyen filas borradas.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Cliente, error)
	List(ctx context.Context, mainCompanyID *string, search string) ([]*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente, mainCompanyID *string) error
	SoftDelete(ctx context.Context, id string, mainCompanyID *string) error
}
