// Package xlsx implementa la exportación del reporte de horas como planilla.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/application/reports"
)

var _ reports.XLSXGenerator = (*ExcelizeReportGenerator)(nil)

// ExcelizeReportGenerator implementa reports.XLSXGenerator usando excelize.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

const sheetName = "Horas por empleado"

// EmployeeHoursXLSX genera la planilla y devuelve sus bytes.
func (g *ExcelizeReportGenerator) EmployeeHoursXLSX(report *dto.EmployeeHoursResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear estilo: %w", err)
	}

	_ = f.SetCellValue(sheetName, "A1", report.PeriodLabel())

	headers := []string{"Empleado", "Turnos", "Horas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, it := range report.Items {
		rowNum := i + 4
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), it.EmployeeName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), it.TotalShifts)
		// Horas como string decimal exacto, sin redondeo binario de float.
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), it.TotalHoras)
	}

	_ = f.SetColWidth(sheetName, "A", "A", 35)
	_ = f.SetColWidth(sheetName, "B", "C", 12)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir planilla: %w", err)
	}
	return buf.Bytes(), nil
}
