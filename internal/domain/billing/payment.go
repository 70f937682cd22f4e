// Package billing calcula el estado de suscripción de un tenant a partir de
// su control de pago. Es lógica pura (sin I/O): los gates HTTP y el login la
// consultan con el reloj inyectado, lo que la hace trivialmente testeable.
package billing

import (
	"time"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// DueSoonDays ventana de aviso "pago próximo a vencer", en días.
const DueSoonDays = 5

// Status es el estado de suscripción derivado de una MainCompany en un
// instante dado. IsActive es el AND del flag manual y el cálculo por fechas.
type Status struct {
	IsActive           bool
	PaymentControl     string
	LastPaymentDate    *time.Time
	NextPaymentDueDate *time.Time
	IsPaymentDueSoon   bool
	NeedsSetup         bool
}

// Compute deriva el estado de suscripción de la empresa con granularidad de
// día calendario (los timestamps se truncan a inicio de día antes de
// comparar). Reglas:
//
//   - sin LastPaymentDate registrado → inactiva, sea cual sea el plan
//   - permanent → activa sin fecha de vencimiento
//   - monthly   → vence en LastPaymentDate + 1 mes (el día de vencimiento
//     inclusive sigue activa)
//   - annual    → vence en LastPaymentDate + 1 año (inclusive)
//   - cualquier otro valor de PaymentControl → inactiva
//
// El resultado final se combina con el flag manual IsActive de la empresa.
func Compute(c *entity.MainCompany, now time.Time) Status {
	st := Status{
		PaymentControl:  c.PaymentControl,
		LastPaymentDate: c.LastPaymentDate,
		NeedsSetup:      c.NeedsSetup,
	}

	today := truncateToDay(now)
	paymentActive := false

	if c.LastPaymentDate != nil {
		last := truncateToDay(*c.LastPaymentDate)
		switch c.PaymentControl {
		case entity.PaymentPermanent:
			paymentActive = true
		case entity.PaymentMonthly:
			due := addMonthsClamped(last, 1)
			st.NextPaymentDueDate = &due
			paymentActive = !today.After(due)
		case entity.PaymentAnnual:
			due := addMonthsClamped(last, 12)
			st.NextPaymentDueDate = &due
			paymentActive = !today.After(due)
		}
	}

	st.IsActive = c.IsActive && paymentActive

	if st.IsActive && st.NextPaymentDueDate != nil {
		days := int(st.NextPaymentDueDate.Sub(today).Hours() / 24)
		st.IsPaymentDueSoon = days >= 0 && days <= DueSoonDays
	}
	return st
}

// truncateToDay descarta la hora conservando la fecha calendario en UTC.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped suma meses calendario ajustando al último día del mes
// destino cuando el día no existe (31 ene + 1 mes = 28/29 feb, no 2/3 mar,
// que es lo que haría time.AddDate).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
