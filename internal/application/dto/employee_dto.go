package dto

// CreateEmployeeRequest alta de empleado (solo admin).
type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateEmployeeRequest modificación de empleado. Status permite reactivar.
type UpdateEmployeeRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// EmployeeResponse empleado serializado.
type EmployeeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	MainCompanyID string `json:"mainCompanyId"`
}
