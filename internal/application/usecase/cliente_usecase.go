package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
	"github.com/tu-usuario/turnos-pro/pkg/normalize"
)

// ClienteUseCase reglas de negocio para sitios de cliente.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	now  func() time.Time
}

// NewClienteUseCase construye el caso de uso con el puerto de persistencia.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, now: time.Now}
}

// Create da de alta un sitio de cliente en el tenant del actor.
func (uc *ClienteUseCase) Create(ctx context.Context, mainCompanyID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Empresa == "" {
		return nil, domain.Validation("empresa es requerida")
	}
	now := uc.now()
	cli := &entity.Cliente{
		ID:             uuid.New().String(),
		Empresa:        in.Empresa,
		Direccion:      in.Direccion,
		Localidad:      in.Localidad,
		NombreContacto: in.NombreContacto,
		Telefono:       in.Telefono,
		Email:          in.Email,
		MainCompanyID:  mainCompanyID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, cli); err != nil {
		return nil, err
	}
	return toClienteResponse(cli), nil
}

// List lista sitios de cliente del tenant con búsqueda opcional.
func (uc *ClienteUseCase) List(ctx context.Context, scope *string, search string) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx, scope, normalize.Search(search))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// GetByID devuelve el cliente dentro del scoping; domain.NotFound si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string, scope *string) (*dto.ClienteResponse, error) {
	cli, err := uc.repo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if cli == nil {
		return nil, domain.NotFound("cliente no encontrado")
	}
	return toClienteResponse(cli), nil
}

// Update modifica los datos del sitio de cliente.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, scope *string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cli, err := uc.repo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if cli == nil {
		return nil, domain.NotFound("cliente no encontrado")
	}
	if in.Empresa != "" {
		cli.Empresa = in.Empresa
	}
	if in.Direccion != "" {
		cli.Direccion = in.Direccion
	}
	if in.Localidad != "" {
		cli.Localidad = in.Localidad
	}
	if in.NombreContacto != "" {
		cli.NombreContacto = in.NombreContacto
	}
	if in.Telefono != "" {
		cli.Telefono = in.Telefono
	}
	if in.Email != "" {
		cli.Email = in.Email
	}
	cli.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, cli, scope); err != nil {
		return nil, err
	}
	return toClienteResponse(cli), nil
}

// SoftDelete marca deleted_at del sitio de cliente.
func (uc *ClienteUseCase) SoftDelete(ctx context.Context, id string, scope *string) error {
	return uc.repo.SoftDelete(ctx, id, scope)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:             c.ID,
		Empresa:        c.Empresa,
		Direccion:      c.Direccion,
		Localidad:      c.Localidad,
		NombreContacto: c.NombreContacto,
		Telefono:       c.Telefono,
		Email:          c.Email,
		MainCompanyID:  c.MainCompanyID,
	}
}
