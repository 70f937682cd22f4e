package scheduling_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turnos-pro/internal/application/scheduling"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del ShiftRepository (solo lo que usa la generación)
// ──────────────────────────────────────────────────────────────────────────────

type fakeShiftRepo struct {
	shifts []*entity.ShiftDetail
	horas  decimal.Decimal // horas por turno (todos los puestos del fake valen lo mismo)
}

func newFakeRepo(hoursPerShift int64) *fakeShiftRepo {
	return &fakeShiftRepo{horas: decimal.NewFromInt(hoursPerShift)}
}

func (f *fakeShiftRepo) add(employeeID, positionID string, date time.Time) {
	f.shifts = append(f.shifts, &entity.ShiftDetail{
		Shift: entity.Shift{
			ID:         "s-" + date.Format("20060102") + "-" + employeeID,
			EmployeeID: employeeID,
			PositionID: positionID,
			Date:       date,
		},
		TotalHoras: f.horas,
	})
}

func (f *fakeShiftRepo) ListRange(_ context.Context, _ *string, from, to time.Time) ([]*entity.ShiftDetail, error) {
	var out []*entity.ShiftDetail
	for _, s := range f.shifts {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) SumHoursByEmployee(_ context.Context, _ *string, from, to time.Time) (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, s := range f.shifts {
		if !s.Date.Before(from) && !s.Date.After(to) {
			sums[s.EmployeeID] = sums[s.EmployeeID].Add(s.TotalHoras)
		}
	}
	return sums, nil
}

func (f *fakeShiftRepo) BatchCreate(_ context.Context, shifts []*entity.Shift) (int, error) {
	for _, s := range shifts {
		f.shifts = append(f.shifts, &entity.ShiftDetail{Shift: *s, TotalHoras: f.horas})
	}
	return len(shifts), nil
}

func (f *fakeShiftRepo) Create(context.Context, *entity.Shift) error { panic("no usado") }
func (f *fakeShiftRepo) Update(context.Context, *entity.Shift, *string) error {
	panic("no usado")
}
func (f *fakeShiftRepo) Delete(context.Context, string, *string) error { panic("no usado") }
func (f *fakeShiftRepo) GetByID(context.Context, string, *string) (*entity.Shift, error) {
	panic("no usado")
}
func (f *fakeShiftRepo) FindConflicts(context.Context, string, time.Time, string, *string) ([]*entity.ShiftDetail, error) {
	panic("no usado")
}

var _ repository.ShiftRepository = (*fakeShiftRepo)(nil)

func newUseCase(repo *fakeShiftRepo) *scheduling.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return scheduling.NewUseCase(repo, nil, nil, log)
}

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El patrón del mes anterior se copia desplazado exactamente un mes.
func TestGenerate_CopiaPatronDelMesAnterior(t *testing.T) {
	repo := newFakeRepo(8)
	repo.add("e1", "p1", fecha(2025, 6, 2))
	repo.add("e1", "p1", fecha(2025, 6, 9))
	repo.add("e1", "p1", fecha(2025, 6, 16))

	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	julio, _ := repo.ListRange(context.Background(), nil, fecha(2025, 7, 1), fecha(2025, 7, 31))
	require.Len(t, julio, 3)
	assert.Equal(t, fecha(2025, 7, 2), julio[0].Date, "el día del mes debe conservarse")
}

// Ejecutar la generación dos veces sin cambios produce count=0 la segunda.
func TestGenerate_SegundaEjecucionNoInsertaNada(t *testing.T) {
	repo := newFakeRepo(8)
	repo.add("e1", "p1", fecha(2025, 6, 5))
	repo.add("e2", "p1", fecha(2025, 6, 5))

	uc := newUseCase(repo)
	first, err := uc.GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	second, err := uc.GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, second, "todos los candidatos ya existen")
}

// El presupuesto de horas (total del mes anterior) limita cuántos turnos se
// copian: las horas ya asignadas en el mes destino cuentan desde el inicio.
func TestGenerate_PresupuestoDeHorasLimita(t *testing.T) {
	repo := newFakeRepo(8)
	// Mes anterior: 2 turnos de 8h → presupuesto 16h.
	repo.add("e1", "p1", fecha(2025, 6, 10))
	repo.add("e1", "p1", fecha(2025, 6, 20))
	// Mes destino: ya hay un turno de 8h en una fecha que no colisiona.
	repo.add("e1", "p1", fecha(2025, 7, 1))

	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	// 8h usadas + primer candidato 8h = 16 ≤ 16 entra; el segundo excedería.
	assert.Equal(t, 1, count)
}

// Escenario de 160 horas: 20 turnos de 8h el mes anterior → presupuesto 160h,
// el mes siguiente se copia completo (el límite es inclusivo).
func TestGenerate_Escenario160Horas(t *testing.T) {
	repo := newFakeRepo(8)
	for d := 1; d <= 20; d++ {
		repo.add("juan-perez", "p1", fecha(2025, 6, d))
	}

	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 20, count, "160h acumuladas = presupuesto 160h, el límite inclusivo admite todas")
}

// sinHorasPrevias simula un empleado con turnos plantilla pero sin suma de
// horas del mes anterior, el caso que dispara el presupuesto por defecto.
type sinHorasPrevias struct{ *fakeShiftRepo }

func (f sinHorasPrevias) SumHoursByEmployee(context.Context, *string, time.Time, time.Time) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{}, nil
}

// Sin datos de horas del mes anterior el presupuesto cae al default de 160h.
func TestGenerate_PresupuestoPorDefecto(t *testing.T) {
	repo := newFakeRepo(8)
	for d := 1; d <= 25; d++ {
		repo.add("e1", "p1", fecha(2025, 6, d))
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := scheduling.NewUseCase(sinHorasPrevias{repo}, nil, nil, log)

	count, err := uc.GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 20, count, "25 plantillas de 8h, pero 160h de presupuesto admiten solo 20")
}

// Enero toma como mes anterior diciembre del año previo.
func TestGenerate_RolloverDeAnio(t *testing.T) {
	repo := newFakeRepo(8)
	repo.add("e1", "p1", fecha(2024, 12, 15))

	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 1, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	enero, _ := repo.ListRange(context.Background(), nil, fecha(2025, 1, 1), fecha(2025, 1, 31))
	require.Len(t, enero, 1)
	assert.Equal(t, fecha(2025, 1, 15), enero[0].Date)
}

// Un turno del 31 de enero no tiene fecha equivalente en febrero: se descarta.
func TestGenerate_MesCortoDescartaDiasInexistentes(t *testing.T) {
	repo := newFakeRepo(8)
	repo.add("e1", "p1", fecha(2025, 1, 28))
	repo.add("e1", "p1", fecha(2025, 1, 31))

	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 2, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "solo el 28 de enero cae dentro de febrero")
}

// Los pares (empleado, fecha) ya ocupados en el mes destino se saltan.
func TestGenerate_ParOcupadoSeSalta(t *testing.T) {
	repo := newFakeRepo(4)
	repo.add("e1", "p1", fecha(2025, 6, 3))
	repo.add("e1", "p1", fecha(2025, 6, 10))
	// El 3 de julio ya está ocupado.
	repo.add("e1", "p2", fecha(2025, 7, 3))

	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "solo el 10 de julio estaba libre")
}

// Sin turnos el mes anterior no hay nada que copiar.
func TestGenerate_SinPlantillasDevuelveCero(t *testing.T) {
	repo := newFakeRepo(8)
	count, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// Parámetros fuera de rango → error de validación.
func TestGenerate_MesInvalido(t *testing.T) {
	repo := newFakeRepo(8)
	_, err := newUseCase(repo).GenerateFromPreviousMonth(context.Background(), nil, 13, 2025)
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
