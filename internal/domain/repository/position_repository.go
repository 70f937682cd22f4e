package repository

import (
	"context"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// PositionRepository define el puerto de persistencia para Position (DIP).
// El tenant de un puesto se deriva de su Cliente (positions → clientes →
// main_company_id), por eso el scoping se resuelve con un JOIN.
type PositionRepository interface {
	// Create devuelve domain.Conflict si el nombre ya existe.
	Create(ctx context.Context, position *entity.Position) error
	GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Position, error)
	// List filtra por tenant y opcionalmente por cliente.
	List(ctx context.Context, mainCompanyID *string, clienteID string) ([]*entity.Position, error)
	Update(ctx context.Context, position *entity.Position, mainCompanyID *string) error
	SoftDelete(ctx context.Context, id string, mainCompanyID *string) error
}
