package dto

// CreateShiftRequest alta de turno (admin y supervisor).
type CreateShiftRequest struct {
	EmployeeID string `json:"employeeId"`
	PositionID string `json:"positionId"`
	Date       string `json:"date"` // YYYY-MM-DD
	Notes      string `json:"notes"`
}

// UpdateShiftRequest modificación de turno existente.
type UpdateShiftRequest struct {
	EmployeeID string `json:"employeeId"`
	PositionID string `json:"positionId"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
}

// ShiftResponse turno con detalle relacional para calendario y conflictos.
type ShiftResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName,omitempty"`
	PositionID    string `json:"positionId"`
	PositionName  string `json:"positionName,omitempty"`
	Siglas        string `json:"siglas,omitempty"`
	Color         string `json:"color,omitempty"`
	TotalHoras    string `json:"totalHoras,omitempty"`
	ClienteID     string `json:"clienteId,omitempty"`
	ClienteNombre string `json:"clienteNombre,omitempty"`
	Date          string `json:"date"`
	Notes         string `json:"notes,omitempty"`
}

// GenerateShiftsRequest genera los turnos de un mes copiando el anterior.
type GenerateShiftsRequest struct {
	Month int `json:"month"` // 1..12
	Year  int `json:"year"`
}

// GenerateShiftsResponse cuántos turnos se insertaron realmente.
type GenerateShiftsResponse struct {
	Count int `json:"count"`
}
