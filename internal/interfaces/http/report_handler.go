package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/reports"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// companyNameLoader carga el nombre del tenant para el membrete del PDF.
// Lo implementa postgres.MainCompanyRepo.
type companyNameLoader interface {
	GetByID(ctx context.Context, id string) (*entity.MainCompany, error)
}

// ReportHandler reporte de horas por empleado en JSON, XLSX y PDF.
type ReportHandler struct {
	uc        *reports.UseCase
	companies companyNameLoader
	log       *logger.Logger
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.UseCase, companies companyNameLoader, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, companies: companies, log: log}
}

// reportFilter arma el filtro desde la query; todos los parámetros son
// opcionales (month y year van juntos, el caso de uso lo valida).
func reportFilter(c *fiber.Ctx) reports.Filter {
	return reports.Filter{
		Month:      c.QueryInt("month"),
		Year:       c.QueryInt("year"),
		EmployeeID: c.Query("employeeId"),
		ClienteID:  c.Query("clientId"),
	}
}

// EmployeeHours godoc
// @Summary      Reporte de horas por empleado
// @Tags         reports
// @Produce      json
// @Param        month       query  int     false  "mes 1..12 (con year)"
// @Param        year        query  int     false  "año (con month)"
// @Param        employeeId  query  string  false  "filtrar por empleado"
// @Param        clientId    query  string  false  "filtrar por cliente"
// @Success      200  {object}  dto.EmployeeHoursResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/employee-hours [get]
func (h *ReportHandler) EmployeeHours(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeHours(c.Context(), TenantScope(c), reportFilter(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// EmployeeHoursXLSX godoc
// @Summary      Reporte de horas por empleado como planilla XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        month  query  int  false  "mes 1..12 (con year)"
// @Param        year   query  int  false  "año (con month)"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/employee-hours/xlsx [get]
func (h *ReportHandler) EmployeeHoursXLSX(c *fiber.Ctx) error {
	data, err := h.uc.EmployeeHoursXLSX(c.Context(), TenantScope(c), reportFilter(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, attachmentName("xlsx"))
	return c.Send(data)
}

// EmployeeHoursPDF godoc
// @Summary      Reporte de horas por empleado como PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        month  query  int  false  "mes 1..12 (con year)"
// @Param        year   query  int  false  "año (con month)"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/employee-hours/pdf [get]
func (h *ReportHandler) EmployeeHoursPDF(c *fiber.Ctx) error {
	companyName, err := h.resolveCompanyName(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	data, err := h.uc.EmployeeHoursPDF(c.Context(), TenantScope(c), reportFilter(c), companyName)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachmentName("pdf"))
	return c.Send(data)
}

func (h *ReportHandler) resolveCompanyName(c *fiber.Ctx) (string, error) {
	scope := TenantScope(c)
	if scope == nil {
		// super_admin sin tenant: membrete genérico de plataforma.
		return "Turnos Pro", nil
	}
	company, err := h.companies.GetByID(c.Context(), *scope)
	if err != nil {
		return "", err
	}
	if company == nil {
		return "Turnos Pro", nil
	}
	return company.Name, nil
}

func attachmentName(ext string) string {
	return fmt.Sprintf(`attachment; filename="horas-empleados-%s.%s"`, time.Now().Format("20060102"), ext)
}
