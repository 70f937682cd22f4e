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

// EmployeeUseCase reglas de negocio para empleados. El parámetro scope es el
// mainCompanyID de la sesión: nil solo para super_admin (sin filtro).
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: time.Now}
}

// Create da de alta un empleado activo en el tenant del actor.
func (uc *EmployeeUseCase) Create(ctx context.Context, mainCompanyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("name es requerido")
	}
	now := uc.now()
	emp := &entity.Employee{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Status:        entity.EmployeeActive,
		MainCompanyID: mainCompanyID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List lista empleados del tenant, con búsqueda opcional insensible a tildes.
func (uc *EmployeeUseCase) List(ctx context.Context, scope *string, search string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx, scope, normalize.Search(search))
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// GetByID devuelve el empleado dentro del scoping; domain.NotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string, scope *string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.NotFound("empleado no encontrado")
	}
	return toEmployeeResponse(emp), nil
}

// Update modifica los datos del empleado; Status permite reactivar.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, scope *string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.NotFound("empleado no encontrado")
	}
	if in.Name != "" {
		emp.Name = in.Name
	}
	if in.Email != "" {
		emp.Email = in.Email
	}
	if in.Phone != "" {
		emp.Phone = in.Phone
	}
	if in.Status != "" {
		if in.Status != entity.EmployeeActive && in.Status != entity.EmployeeInactive {
			return nil, domain.Validation("status debe ser active o inactive")
		}
		emp.Status = in.Status
	}
	emp.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, emp, scope); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Deactivate es el "borrado" de empleados: flip a inactive, nunca DELETE.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id string, scope *string) error {
	return uc.repo.SetStatus(ctx, id, entity.EmployeeInactive, scope)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Status:        e.Status,
		MainCompanyID: e.MainCompanyID,
	}
}
