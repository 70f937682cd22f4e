package dto

// CreateMainCompanyRequest provisión de tenant desde el sentinel zone
// (solo super_admin). AdminUsername es el username del primer admin, que se
// crea con la contraseña por defecto y mustChangePassword=true.
type CreateMainCompanyRequest struct {
	Name            string  `json:"name"`
	PaymentControl  string  `json:"paymentControl"`
	LastPaymentDate *string `json:"lastPaymentDate"` // YYYY-MM-DD
	Country         string  `json:"country"`
	Province        string  `json:"province"`
	City            string  `json:"city"`
	Address         string  `json:"address"`
	TaxID           string  `json:"taxId"`
	ContactName     string  `json:"contactName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	AdminUsername   string  `json:"adminUsername"`
}

// UpdateMainCompanyRequest modificación de tenant, incluidos los campos de
// facturación que gobiernan el payment gate.
type UpdateMainCompanyRequest struct {
	Name            string  `json:"name"`
	PaymentControl  string  `json:"paymentControl"`
	LastPaymentDate *string `json:"lastPaymentDate"`
	IsActive        *bool   `json:"isActive"`
	NeedsSetup      *bool   `json:"needsSetup"`
	Country         string  `json:"country"`
	Province        string  `json:"province"`
	City            string  `json:"city"`
	Address         string  `json:"address"`
	TaxID           string  `json:"taxId"`
	ContactName     string  `json:"contactName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
}

// MainCompanyResponse tenant + su estado de suscripción calculado.
type MainCompanyResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	PaymentControl string                `json:"paymentControl"`
	Country        string                `json:"country"`
	Province       string                `json:"province"`
	City           string                `json:"city"`
	Address        string                `json:"address"`
	TaxID          string                `json:"taxId"`
	ContactName    string                `json:"contactName"`
	Phone          string                `json:"phone"`
	Email          string                `json:"email"`
	Status         CompanyStatusResponse `json:"status"`
}

// ProvisionResponse resultado de la provisión: tenant + primer admin.
type ProvisionResponse struct {
	Company MainCompanyResponse `json:"company"`
	Admin   UserResponse        `json:"admin"`
}
