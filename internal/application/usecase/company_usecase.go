package usecase

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
)

// DefaultAdminPassword contraseña inicial de los admins provisionados y de
// los reseteos desde el sentinel zone; siempre con mustChangePassword=true.
const DefaultAdminPassword = "Cambiar123!"

// ProvisionRunner ejecuta la provisión de tenant (empresa + primer admin)
// dentro de una transacción. Lo implementa postgres.TxRunner.
type ProvisionRunner interface {
	RunProvision(ctx context.Context, fn func(
		companies repository.MainCompanyRepository,
		users repository.UserRepository,
	) error) error
}

// CompanyUseCase casos de uso del sentinel zone sobre tenants: provisión,
// listado con estado de suscripción, actualización y baja lógica.
// Todos sus llamadores deben ser super_admin (lo garantiza el policy gate).
type CompanyUseCase struct {
	repo     repository.MainCompanyRepository
	userRepo repository.UserRepository
	tx       ProvisionRunner
	now      func() time.Time
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.MainCompanyRepository, userRepo repository.UserRepository, tx ProvisionRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, userRepo: userRepo, tx: tx, now: time.Now}
}

var validPaymentControls = map[string]bool{
	entity.PaymentMonthly:   true,
	entity.PaymentAnnual:    true,
	entity.PaymentPermanent: true,
}

// Provision crea el tenant y su primer admin en una sola transacción. El
// admin nace con la contraseña por defecto y mustChangePassword=true.
// Devuelve domain.Conflict si el nombre de empresa o el username ya existen.
func (uc *CompanyUseCase) Provision(ctx context.Context, in dto.CreateMainCompanyRequest) (*dto.ProvisionResponse, error) {
	if in.Name == "" || in.AdminUsername == "" {
		return nil, domain.Validation("name y adminUsername son requeridos")
	}
	if in.PaymentControl == "" {
		in.PaymentControl = entity.PaymentMonthly
	}
	if !validPaymentControls[in.PaymentControl] {
		return nil, domain.Validation("paymentControl debe ser monthly, annual o permanent")
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("ya existe una empresa con ese nombre", nil)
	}

	var lastPayment *time.Time
	if in.LastPaymentDate != nil && *in.LastPaymentDate != "" {
		d, err := dto.ParseDate(*in.LastPaymentDate)
		if err != nil {
			return nil, domain.Validation("lastPaymentDate debe tener formato YYYY-MM-DD")
		}
		lastPayment = &d
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	company := &entity.MainCompany{
		ID:              uuid.New().String(),
		Name:            in.Name,
		PaymentControl:  in.PaymentControl,
		LastPaymentDate: lastPayment,
		IsActive:        true,
		NeedsSetup:      true,
		Country:         in.Country,
		Province:        in.Province,
		City:            in.City,
		Address:         in.Address,
		TaxID:           in.TaxID,
		ContactName:     in.ContactName,
		Phone:           in.Phone,
		Email:           in.Email,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	admin := &entity.User{
		ID:                 uuid.New().String(),
		Username:           in.AdminUsername,
		PasswordHash:       string(hash),
		Role:               entity.RoleAdmin,
		MainCompanyID:      &company.ID,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Empresa y primer admin nacen juntos o no nace ninguno.
	err = uc.tx.RunProvision(ctx, func(companies repository.MainCompanyRepository, users repository.UserRepository) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return users.Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}

	resp := uc.toResponse(company)
	return &dto.ProvisionResponse{
		Company: *resp,
		Admin: dto.UserResponse{
			ID:                 admin.ID,
			Username:           admin.Username,
			Role:               admin.Role,
			MainCompanyID:      admin.MainCompanyID,
			MustChangePassword: admin.MustChangePassword,
		},
	}, nil
}

// List lista los tenants no borrados con su estado de suscripción calculado.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.MainCompanyResponse, error) {
	companies, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MainCompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *uc.toResponse(c))
	}
	return items, nil
}

// GetByID devuelve un tenant con estado calculado; domain.NotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.MainCompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("la empresa no existe")
	}
	return uc.toResponse(company), nil
}

// Update modifica el tenant, incluidos los campos de facturación que
// gobiernan el payment gate (paymentControl, lastPaymentDate, isActive).
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateMainCompanyRequest) (*dto.MainCompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("la empresa no existe")
	}
	if in.Name != "" && in.Name != company.Name {
		other, err := uc.repo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.Conflict("ya existe una empresa con ese nombre", nil)
		}
		company.Name = in.Name
	}
	if in.PaymentControl != "" {
		if !validPaymentControls[in.PaymentControl] {
			return nil, domain.Validation("paymentControl debe ser monthly, annual o permanent")
		}
		company.PaymentControl = in.PaymentControl
	}
	if in.LastPaymentDate != nil {
		if *in.LastPaymentDate == "" {
			company.LastPaymentDate = nil
		} else {
			d, err := dto.ParseDate(*in.LastPaymentDate)
			if err != nil {
				return nil, domain.Validation("lastPaymentDate debe tener formato YYYY-MM-DD")
			}
			company.LastPaymentDate = &d
		}
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	if in.NeedsSetup != nil {
		company.NeedsSetup = *in.NeedsSetup
	}
	if in.Country != "" {
		company.Country = in.Country
	}
	if in.Province != "" {
		company.Province = in.Province
	}
	if in.City != "" {
		company.City = in.City
	}
	if in.Address != "" {
		company.Address = in.Address
	}
	if in.TaxID != "" {
		company.TaxID = in.TaxID
	}
	if in.ContactName != "" {
		company.ContactName = in.ContactName
	}
	if in.Phone != "" {
		company.Phone = in.Phone
	}
	if in.Email != "" {
		company.Email = in.Email
	}
	company.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return uc.toResponse(company), nil
}

// SoftDelete marca deleted_at; los logins de sus usuarios quedan bloqueados
// porque GetByID deja de devolver la empresa.
func (uc *CompanyUseCase) SoftDelete(ctx context.Context, id string) error {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.NotFound("la empresa no existe")
	}
	return uc.repo.SoftDelete(ctx, id)
}

// ResetAdminPassword restaura la contraseña del primer admin del tenant a la
// contraseña por defecto y fuerza el cambio en el próximo login.
func (uc *CompanyUseCase) ResetAdminPassword(ctx context.Context, companyID string) (*dto.UserResponse, error) {
	company, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("la empresa no existe")
	}
	admin, err := uc.userRepo.FirstAdminByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.NotFound("la empresa no tiene un admin")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = string(hash)
	admin.MustChangePassword = true
	admin.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:                 admin.ID,
		Username:           admin.Username,
		Role:               admin.Role,
		MainCompanyID:      admin.MainCompanyID,
		MustChangePassword: admin.MustChangePassword,
	}, nil
}

func (uc *CompanyUseCase) toResponse(c *entity.MainCompany) *dto.MainCompanyResponse {
	st := billing.Compute(c, uc.now())
	return &dto.MainCompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		PaymentControl: c.PaymentControl,
		Country:        c.Country,
		Province:       c.Province,
		City:           c.City,
		Address:        c.Address,
		TaxID:          c.TaxID,
		ContactName:    c.ContactName,
		Phone:          c.Phone,
		Email:          c.Email,
		Status: dto.CompanyStatusResponse{
			IsActive:           st.IsActive,
			PaymentControl:     st.PaymentControl,
			LastPaymentDate:    dto.FormatDatePtr(st.LastPaymentDate),
			NextPaymentDueDate: dto.FormatDatePtr(st.NextPaymentDueDate),
			IsPaymentDueSoon:   st.IsPaymentDueSoon,
			NeedsSetup:         st.NeedsSetup,
		},
	}
}
