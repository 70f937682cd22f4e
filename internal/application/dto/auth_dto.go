package dto

// LoginRequest credenciales de inicio de sesión. RememberMe alarga la vida
// de la sesión (36h vs 30min).
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// UserResponse usuario sin hash de password.
type UserResponse struct {
	ID                 string  `json:"id"`
	Username           string  `json:"username"`
	Role               string  `json:"role"`
	MainCompanyID      *string `json:"mainCompanyId"`
	MustChangePassword bool    `json:"mustChangePassword"`
}

// LoginResponse respuesta de login exitoso (la sesión viaja en la cookie).
type LoginResponse struct {
	User UserResponse `json:"user"`
}

// CompanyStatusResponse estado de suscripción derivado del tenant.
type CompanyStatusResponse struct {
	IsActive           bool    `json:"isActive"`
	PaymentControl     string  `json:"paymentControl"`
	LastPaymentDate    *string `json:"lastPaymentDate"`
	NextPaymentDueDate *string `json:"nextPaymentDueDate"`
	IsPaymentDueSoon   bool    `json:"isPaymentDueSoon"`
	NeedsSetup         bool    `json:"needsSetup"`
}

// MeResponse usuario actual + estado de su tenant. CompanyStatus es nil para
// super_admin (no pertenece a ningún tenant).
type MeResponse struct {
	User          UserResponse           `json:"user"`
	CompanyStatus *CompanyStatusResponse `json:"companyStatus,omitempty"`
}

// SetPasswordRequest cambio de contraseña del propio usuario.
type SetPasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
