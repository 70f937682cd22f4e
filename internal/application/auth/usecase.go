package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/billing"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// UseCase casos de uso de autenticación: login, estado del tenant y cambio de
// contraseña. La sesión en sí la gestiona la capa HTTP; aquí solo se decide
// si puede crearse.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.MainCompanyRepository
	historyRepo repository.LoginHistoryRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.MainCompanyRepository,
	historyRepo repository.LoginHistoryRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		historyRepo: historyRepo,
		log:         log,
		now:         time.Now,
	}
}

// Login verifica credenciales y el estado de suscripción del tenant. Un
// tenant inactivo o con pago vencido bloquea la creación de sesión (403),
// distinto del 401 por credenciales malas. Registra el login en el histórico.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest, ip string) (*entity.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.Validation("username y password son requeridos")
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthorized("credenciales inválidas")
	}

	// super_admin está exento del payment gate; el resto no obtiene sesión
	// si su empresa está inactiva o vencida.
	if !user.IsSuperAdmin() {
		if user.MainCompanyID == nil {
			return nil, domain.Forbidden("el usuario no pertenece a ninguna empresa")
		}
		company, err := uc.companyRepo.GetByID(ctx, *user.MainCompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.Forbidden("la empresa del usuario no existe")
		}
		if st := billing.Compute(company, uc.now()); !st.IsActive {
			return nil, domain.Forbidden("la empresa está inactiva o con el pago vencido")
		}
	}

	rec := &entity.LoginHistory{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		MainCompanyID:  user.MainCompanyID,
		IPAddress:      ip,
		LoginTimestamp: uc.now(),
	}
	if err := uc.historyRepo.Append(ctx, rec); err != nil {
		// El histórico es auditoría, no puede tumbar el login.
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo registrar el login en el histórico")
	}

	return user, nil
}

// CompanyStatus calcula el estado de suscripción del tenant del usuario.
// Devuelve nil para super_admin.
func (uc *UseCase) CompanyStatus(ctx context.Context, user *entity.User) (*dto.CompanyStatusResponse, error) {
	if user.IsSuperAdmin() || user.MainCompanyID == nil {
		return nil, nil
	}
	company, err := uc.companyRepo.GetByID(ctx, *user.MainCompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("la empresa del usuario no existe")
	}
	st := billing.Compute(company, uc.now())
	return &dto.CompanyStatusResponse{
		IsActive:           st.IsActive,
		PaymentControl:     st.PaymentControl,
		LastPaymentDate:    dto.FormatDatePtr(st.LastPaymentDate),
		NextPaymentDueDate: dto.FormatDatePtr(st.NextPaymentDueDate),
		IsPaymentDueSoon:   st.IsPaymentDueSoon,
		NeedsSetup:         st.NeedsSetup,
	}, nil
}

// SetPassword cambia la contraseña del propio usuario y limpia
// mustChangePassword. Exige la contraseña anterior correcta.
func (uc *UseCase) SetPassword(ctx context.Context, userID string, in dto.SetPasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword {
		return domain.Validation("la confirmación no coincide con la nueva contraseña")
	}
	if len(in.NewPassword) < 8 {
		return domain.Validation("la nueva contraseña debe tener al menos 8 caracteres")
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Unauthorized("sesión inválida")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.Unauthorized("la contraseña actual es incorrecta")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.MustChangePassword = false
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

// ToUserResponse convierte un User a su DTO público (sin hash).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               u.Role,
		MainCompanyID:      u.MainCompanyID,
		MustChangePassword: u.MustChangePassword,
	}
}
