// Package pdf implementa la exportación del reporte de horas por empleado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa │ Título + período            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Turnos | Horas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: turnos y horas acumulados del período              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// EmployeeHoursPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) EmployeeHoursPDF(report *dto.EmployeeHoursResponse, companyName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de horas por empleado", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de empresa (izq) y título + período (der).
func headerRow(report *dto.EmployeeHoursResponse, companyName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE HORAS POR EMPLEADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.PeriodLabel(), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de empleados.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empleado", 7, align.Left),
		h("Turnos", 2, align.Center),
		h("Horas", 3, align.Right),
	)
}

// tableDetailRows: una fila por empleado.
func tableDetailRows(items []dto.EmployeeHoursItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(7).Add(text.New(
				it.EmployeeName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", it.TotalShifts),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				it.TotalHoras,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: acumulados del período alineados a la derecha.
func totalsRow(items []dto.EmployeeHoursItem) core.Row {
	totalShifts := 0
	totalHoras := decimal.Zero
	for _, it := range items {
		totalShifts += it.TotalShifts
		if h, err := decimal.NewFromString(it.TotalHoras); err == nil {
			totalHoras = totalHoras.Add(h)
		}
	}

	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", totalShifts), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(totalHoras.String(), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
