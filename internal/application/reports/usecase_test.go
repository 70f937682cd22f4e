package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turnos-pro/internal/application/reports"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

type fakeReportRepo struct {
	got  repository.ReportFilter
	rows []repository.EmployeeHoursRow
}

func (f *fakeReportRepo) EmployeeHours(_ context.Context, filter repository.ReportFilter) ([]repository.EmployeeHoursRow, error) {
	f.got = filter
	return f.rows, nil
}

// Sin filtros el agregado cubre el histórico completo: el repo recibe el
// rango sin acotar y la respuesta no lleva período.
func TestEmployeeHours_SinFiltrosCubreElHistorico(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.EmployeeHoursRow{
		{EmployeeID: "e1", EmployeeName: "Ana", TotalShifts: 3, TotalHoras: decimal.NewFromInt(24)},
	}}
	uc := reports.NewUseCase(repo, nil, nil)

	out, err := uc.EmployeeHours(context.Background(), nil, reports.Filter{})
	require.NoError(t, err)
	assert.Nil(t, repo.got.From)
	assert.Nil(t, repo.got.To)
	assert.Empty(t, out.From)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "24", out.Items[0].TotalHoras)
}

// month+year acotan al mes calendario completo, con febrero bisiesto incluido.
func TestEmployeeHours_FiltroPorMesCalendario(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewUseCase(repo, nil, nil)

	out, err := uc.EmployeeHours(context.Background(), nil, reports.Filter{Month: 2, Year: 2024})
	require.NoError(t, err)
	require.NotNil(t, repo.got.From)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *repo.got.From)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *repo.got.To)
	assert.Equal(t, "2024-02-01", out.From)
	assert.Equal(t, "2024-02-29", out.To)
}

// month sin year (o fuera de rango) es un error de validación.
func TestEmployeeHours_FiltroInvalido(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, nil, nil)

	_, err := uc.EmployeeHours(context.Background(), nil, reports.Filter{Month: 7})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = uc.EmployeeHours(context.Background(), nil, reports.Filter{Month: 13, Year: 2024})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

// Los filtros por empleado y cliente llegan tal cual al repositorio.
func TestEmployeeHours_FiltrosPorEmpleadoYCliente(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewUseCase(repo, nil, nil)

	_, err := uc.EmployeeHours(context.Background(), nil, reports.Filter{EmployeeID: "e9", ClienteID: "c3"})
	require.NoError(t, err)
	assert.Equal(t, "e9", repo.got.EmployeeID)
	assert.Equal(t, "c3", repo.got.ClienteID)
}
