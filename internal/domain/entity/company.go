package entity

import "time"

// Tipos de control de pago (ciclo de facturación del tenant).
const (
	PaymentMonthly   = "monthly"
	PaymentAnnual    = "annual"
	PaymentPermanent = "permanent"
)

// MainCompany representa una organización/tenant del sistema. Es la unidad de
// aislamiento de datos: casi todas las filas del modelo llevan su ID.
// Borrado lógico vía DeletedAt.
type MainCompany struct {
	ID              string
	Name            string // único a nivel plataforma
	PaymentControl  string // monthly, annual, permanent
	LastPaymentDate *time.Time
	IsActive        bool // interruptor manual del super_admin
	NeedsSetup      bool // true hasta que el primer admin completa la configuración
	Country         string
	Province        string
	City            string
	Address         string
	TaxID           string
	ContactName     string
	Phone           string
	Email           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
