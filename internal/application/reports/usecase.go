// Package reports arma el reporte de horas por empleado y lo exporta en
// JSON, XLSX o PDF según lo pida el handler.
package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

// UseCase casos de uso de reportes.
type UseCase struct {
	repo repository.ReportRepository
	pdf  PDFGenerator
	xlsx XLSXGenerator
}

// NewUseCase construye el caso de uso con el puerto de lectura y los
// generadores de exportación.
func NewUseCase(repo repository.ReportRepository, pdf PDFGenerator, xlsx XLSXGenerator) *UseCase {
	return &UseCase{repo: repo, pdf: pdf, xlsx: xlsx}
}

// Filter filtros del reporte, todos opcionales: month+year (juntos) acotan al
// mes calendario; EmployeeID y ClienteID restringen por empleado o cliente.
type Filter struct {
	Month      int
	Year       int
	EmployeeID string
	ClienteID  string
}

// monthRange resuelve el rango del filtro; nil/nil cuando no se pidió mes.
func (f Filter) monthRange() (*time.Time, *time.Time, error) {
	if f.Month == 0 && f.Year == 0 {
		return nil, nil, nil
	}
	if f.Month < 1 || f.Month > 12 {
		return nil, nil, domain.Validation("month debe estar entre 1 y 12")
	}
	if f.Year < 2000 || f.Year > 2100 {
		return nil, nil, domain.Validation("year fuera de rango")
	}
	from := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return &from, &to, nil
}

// EmployeeHours agrega horas y turnos por empleado; sin month+year el
// agregado cubre todos los turnos registrados.
func (uc *UseCase) EmployeeHours(ctx context.Context, scope *string, f Filter) (*dto.EmployeeHoursResponse, error) {
	from, to, err := f.monthRange()
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.EmployeeHours(ctx, repository.ReportFilter{
		MainCompanyID: scope,
		From:          from,
		To:            to,
		EmployeeID:    f.EmployeeID,
		ClienteID:     f.ClienteID,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.EmployeeHoursItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.EmployeeHoursItem{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			TotalShifts:  r.TotalShifts,
			TotalHoras:   r.TotalHoras.String(),
		})
	}
	out := &dto.EmployeeHoursResponse{Items: items}
	if from != nil {
		out.From = dto.FormatDate(*from)
		out.To = dto.FormatDate(*to)
	}
	return out, nil
}

// EmployeeHoursXLSX exporta el mismo reporte como planilla.
func (uc *UseCase) EmployeeHoursXLSX(ctx context.Context, scope *string, f Filter) ([]byte, error) {
	report, err := uc.EmployeeHours(ctx, scope, f)
	if err != nil {
		return nil, err
	}
	data, err := uc.xlsx.EmployeeHoursXLSX(report)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return data, nil
}

// EmployeeHoursPDF exporta el mismo reporte como PDF con membrete.
func (uc *UseCase) EmployeeHoursPDF(ctx context.Context, scope *string, f Filter, companyName string) ([]byte, error) {
	report, err := uc.EmployeeHours(ctx, scope, f)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.EmployeeHoursPDF(report, companyName)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return data, nil
}
