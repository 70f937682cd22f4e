package dto

// EmployeeHoursItem resumen de horas y turnos de un empleado en el período.
type EmployeeHoursItem struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	TotalShifts  int    `json:"totalShifts"`
	TotalHoras   string `json:"totalHoras"` // decimal serializado
}

// EmployeeHoursResponse reporte agregado de horas por empleado. From/To
// quedan vacíos cuando no se filtró por mes.
type EmployeeHoursResponse struct {
	From  string              `json:"from,omitempty"`
	To    string              `json:"to,omitempty"`
	Items []EmployeeHoursItem `json:"items"`
}

// PeriodLabel leyenda del período para las exportaciones XLSX/PDF.
func (r *EmployeeHoursResponse) PeriodLabel() string {
	if r.From == "" {
		return "Período: histórico completo"
	}
	return "Período: " + r.From + " a " + r.To
}

// LoginHistoryPoint un día de la serie de logins (serie rellenada a cero).
type LoginHistoryPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LoginHistoryResponse serie diaria de logins para el dashboard sentinel.
type LoginHistoryResponse struct {
	Period string              `json:"period"`
	From   string              `json:"from"`
	To     string              `json:"to"`
	Items  []LoginHistoryPoint `json:"items"`
}
