package repository

import (
	"context"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// MainCompanyRepository define el puerto de persistencia para MainCompany (DIP).
// Las consultas excluyen siempre filas con deleted_at no nulo.
type MainCompanyRepository interface {
	// Create devuelve domain.Conflict si el nombre ya existe a nivel plataforma.
	Create(ctx context.Context, company *entity.MainCompany) error
	// GetByID devuelve nil si no existe o está borrada lógicamente.
	GetByID(ctx context.Context, id string) (*entity.MainCompany, error)
	GetByName(ctx context.Context, name string) (*entity.MainCompany, error)
	List(ctx context.Context) ([]*entity.MainCompany, error)
	Update(ctx context.Context, company *entity.MainCompany) error
	// SoftDelete marca deleted_at; las filas hijas no se tocan.
	SoftDelete(ctx context.Context, id string) error
}
