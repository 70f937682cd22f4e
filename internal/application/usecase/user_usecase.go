package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

// UserUseCase gestión de usuarios dentro de un tenant (la provisión de
// super_admins y primeros admins vive en CompanyUseCase).
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// Create da de alta un usuario admin o supervisor en el tenant del actor.
// Devuelve domain.Conflict si el username ya existe.
func (uc *UserUseCase) Create(ctx context.Context, mainCompanyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.Validation("username y password son requeridos")
	}
	if len(in.Password) < 8 {
		return nil, domain.Validation("password debe tener al menos 8 caracteres")
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleSupervisor {
		return nil, domain.Validation("role debe ser admin o supervisor")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Username:      in.Username,
		PasswordHash:  string(hash),
		Role:          in.Role,
		MainCompanyID: &mainCompanyID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// List lista los usuarios del tenant.
func (uc *UserUseCase) List(ctx context.Context, scope *string) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return items, nil
}

// Delete borra físicamente un usuario del tenant. El auto-borrado está
// prohibido (actorID es el usuario de la sesión).
func (uc *UserUseCase) Delete(ctx context.Context, id, actorID string, scope *string) error {
	if id == actorID {
		return domain.Validation("no puedes eliminar tu propio usuario")
	}
	return uc.repo.Delete(ctx, id, scope)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               u.Role,
		MainCompanyID:      u.MainCompanyID,
		MustChangePassword: u.MustChangePassword,
	}
}
