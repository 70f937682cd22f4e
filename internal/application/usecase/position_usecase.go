package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

// PositionUseCase reglas de negocio para puestos de trabajo.
type PositionUseCase struct {
	repo        repository.PositionRepository
	clienteRepo repository.ClienteRepository
	now         func() time.Time
}

// NewPositionUseCase construye el caso de uso con los puertos de persistencia.
func NewPositionUseCase(repo repository.PositionRepository, clienteRepo repository.ClienteRepository) *PositionUseCase {
	return &PositionUseCase{repo: repo, clienteRepo: clienteRepo, now: time.Now}
}

// Create da de alta un puesto dentro de un cliente del tenant del actor.
// Valida que el cliente exista en el scoping (si no, NotFound: un cliente de
// otro tenant es indistinguible de uno inexistente).
func (uc *PositionUseCase) Create(ctx context.Context, scope *string, in dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	if in.Name == "" || in.ClienteID == "" {
		return nil, domain.Validation("name y clienteId son requeridos")
	}
	if in.TotalHoras.IsNegative() || in.TotalHoras.IsZero() {
		return nil, domain.Validation("totalHoras debe ser mayor que cero")
	}
	cli, err := uc.clienteRepo.GetByID(ctx, in.ClienteID, scope)
	if err != nil {
		return nil, err
	}
	if cli == nil {
		return nil, domain.NotFound("cliente no encontrado")
	}
	now := uc.now()
	pos := &entity.Position{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Siglas:      in.Siglas,
		Department:  in.Department,
		Description: in.Description,
		Color:       in.Color,
		TotalHoras:  in.TotalHoras,
		ClienteID:   in.ClienteID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, pos); err != nil {
		return nil, err
	}
	return toPositionResponse(pos), nil
}

// List lista puestos del tenant, opcionalmente de un solo cliente.
func (uc *PositionUseCase) List(ctx context.Context, scope *string, clienteID string) ([]dto.PositionResponse, error) {
	list, err := uc.repo.List(ctx, scope, clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PositionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPositionResponse(p))
	}
	return items, nil
}

// GetByID devuelve el puesto dentro del scoping; domain.NotFound si no existe.
func (uc *PositionUseCase) GetByID(ctx context.Context, id string, scope *string) (*dto.PositionResponse, error) {
	pos, err := uc.repo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.NotFound("puesto no encontrado")
	}
	return toPositionResponse(pos), nil
}

// Update modifica los datos del puesto.
func (uc *PositionUseCase) Update(ctx context.Context, id string, scope *string, in dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	pos, err := uc.repo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.NotFound("puesto no encontrado")
	}
	if in.Name != "" {
		pos.Name = in.Name
	}
	if in.Siglas != "" {
		pos.Siglas = in.Siglas
	}
	if in.Department != "" {
		pos.Department = in.Department
	}
	if in.Description != "" {
		pos.Description = in.Description
	}
	if in.Color != "" {
		pos.Color = in.Color
	}
	if !in.TotalHoras.IsZero() {
		if in.TotalHoras.IsNegative() {
			return nil, domain.Validation("totalHoras debe ser mayor que cero")
		}
		pos.TotalHoras = in.TotalHoras
	}
	pos.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, pos, scope); err != nil {
		return nil, err
	}
	return toPositionResponse(pos), nil
}

// SoftDelete marca deleted_at del puesto.
func (uc *PositionUseCase) SoftDelete(ctx context.Context, id string, scope *string) error {
	return uc.repo.SoftDelete(ctx, id, scope)
}

func toPositionResponse(p *entity.Position) *dto.PositionResponse {
	return &dto.PositionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Siglas:      p.Siglas,
		Department:  p.Department,
		Description: p.Description,
		Color:       p.Color,
		TotalHoras:  p.TotalHoras,
		ClienteID:   p.ClienteID,
	}
}
