package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turnos-pro/internal/domain/billing"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func companyWith(control string, last *time.Time, manualActive bool) *entity.MainCompany {
	return &entity.MainCompany{
		ID:              "c1",
		Name:            "Seguridad Integral SA",
		PaymentControl:  control,
		LastPaymentDate: last,
		IsActive:        manualActive,
	}
}

// Sin pago registrado nunca → inactiva, independiente del plan.
func TestCompute_SinPagoRegistrado_Inactiva(t *testing.T) {
	for _, control := range []string{entity.PaymentMonthly, entity.PaymentAnnual, entity.PaymentPermanent} {
		st := billing.Compute(companyWith(control, nil, true), day(2025, 6, 1))
		assert.False(t, st.IsActive, "plan %s sin last_payment_date debe ser inactiva", control)
		assert.Nil(t, st.NextPaymentDueDate)
		assert.False(t, st.IsPaymentDueSoon)
	}
}

// Plan permanent con cualquier fecha de pago → siempre activa, sin vencimiento.
func TestCompute_Permanent_SiempreActiva(t *testing.T) {
	last := day(2019, 1, 1)
	st := billing.Compute(companyWith(entity.PaymentPermanent, &last, true), day(2025, 6, 1))
	assert.True(t, st.IsActive)
	assert.Nil(t, st.NextPaymentDueDate)
	assert.False(t, st.IsPaymentDueSoon)
}

// Monotonicidad mensual: pago de hoy → activa; pago de hace 31 días → inactiva.
func TestCompute_Monthly_Monotonia(t *testing.T) {
	now := day(2025, 6, 15)

	hoy := now
	st := billing.Compute(companyWith(entity.PaymentMonthly, &hoy, true), now)
	assert.True(t, st.IsActive, "pago de hoy debe dejar la empresa activa")

	hace31 := now.AddDate(0, 0, -31)
	st = billing.Compute(companyWith(entity.PaymentMonthly, &hace31, true), now)
	assert.False(t, st.IsActive, "pago de hace 31 días (mensual) debe estar vencido")
}

// El día de vencimiento inclusive sigue activa; al día siguiente no.
func TestCompute_Monthly_LimiteInclusive(t *testing.T) {
	last := day(2025, 5, 10) // vence el 10 de junio
	c := companyWith(entity.PaymentMonthly, &last, true)

	st := billing.Compute(c, day(2025, 6, 10))
	assert.True(t, st.IsActive, "el día de vencimiento cuenta como activa")

	st = billing.Compute(c, day(2025, 6, 11))
	assert.False(t, st.IsActive, "un día después del vencimiento debe estar inactiva")
}

// Suma de mes con clamping: 31 de enero + 1 mes = último día de febrero.
func TestCompute_Monthly_MesCorto(t *testing.T) {
	last := day(2025, 1, 31)
	st := billing.Compute(companyWith(entity.PaymentMonthly, &last, true), day(2025, 2, 20))
	require.NotNil(t, st.NextPaymentDueDate)
	assert.Equal(t, day(2025, 2, 28), *st.NextPaymentDueDate)
	assert.True(t, st.IsActive)
}

// Ventana due-soon: 5 días exactos → true; 6 días → false; vencida → false.
func TestCompute_DueSoon_Limites(t *testing.T) {
	now := day(2025, 6, 15)

	// due = 20 de junio (5 días)
	last5 := day(2025, 5, 20)
	st := billing.Compute(companyWith(entity.PaymentMonthly, &last5, true), now)
	require.NotNil(t, st.NextPaymentDueDate)
	assert.Equal(t, day(2025, 6, 20), *st.NextPaymentDueDate)
	assert.True(t, st.IsPaymentDueSoon, "vencimiento a 5 días debe avisar")

	// due = 21 de junio (6 días)
	last6 := day(2025, 5, 21)
	st = billing.Compute(companyWith(entity.PaymentMonthly, &last6, true), now)
	assert.False(t, st.IsPaymentDueSoon, "vencimiento a 6 días no debe avisar")

	// vencida: due en el pasado → inactiva y sin aviso
	lastOld := day(2025, 4, 1)
	st = billing.Compute(companyWith(entity.PaymentMonthly, &lastOld, true), now)
	assert.False(t, st.IsActive)
	assert.False(t, st.IsPaymentDueSoon, "una empresa ya vencida no está 'por vencer'")
}

// El flag manual IsActive domina: aunque el pago esté al día, apagada es apagada.
func TestCompute_FlagManualApagado_Inactiva(t *testing.T) {
	last := day(2025, 6, 10)
	st := billing.Compute(companyWith(entity.PaymentMonthly, &last, false), day(2025, 6, 15))
	assert.False(t, st.IsActive)
	assert.False(t, st.IsPaymentDueSoon)
}

// Escenario anual completo: pago 2024-01-15, al 2025-01-10 activa y por
// vencer (due 2025-01-15); al 2025-01-20 inactiva.
func TestCompute_Annual_Escenario(t *testing.T) {
	last := day(2024, 1, 15)
	c := companyWith(entity.PaymentAnnual, &last, true)

	st := billing.Compute(c, day(2025, 1, 10))
	require.NotNil(t, st.NextPaymentDueDate)
	assert.Equal(t, day(2025, 1, 15), *st.NextPaymentDueDate)
	assert.True(t, st.IsActive)
	assert.True(t, st.IsPaymentDueSoon)

	st = billing.Compute(c, day(2025, 1, 20))
	assert.False(t, st.IsActive)
}

// PaymentControl desconocido → inactiva aunque haya pago reciente.
func TestCompute_ControlDesconocido_Inactiva(t *testing.T) {
	last := day(2025, 6, 14)
	st := billing.Compute(companyWith("weekly", &last, true), day(2025, 6, 15))
	assert.False(t, st.IsActive)
}

// Los timestamps con hora se truncan a día antes de comparar.
func TestCompute_TruncaAHoraCero(t *testing.T) {
	last := time.Date(2025, 5, 10, 23, 59, 59, 0, time.UTC)
	c := companyWith(entity.PaymentMonthly, &last, true)
	now := time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)

	st := billing.Compute(c, now)
	assert.True(t, st.IsActive, "la comparación debe ser por fecha calendario, no por instante")
}
