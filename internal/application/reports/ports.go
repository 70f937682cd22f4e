package reports

import "github.com/tu-usuario/turnos-pro/internal/application/dto"

// PDFGenerator renderiza el reporte de horas como documento PDF.
type PDFGenerator interface {
	EmployeeHoursPDF(report *dto.EmployeeHoursResponse, companyName string) ([]byte, error)
}

// XLSXGenerator renderiza el reporte de horas como planilla XLSX.
type XLSXGenerator interface {
	EmployeeHoursXLSX(report *dto.EmployeeHoursResponse) ([]byte, error)
}
