package dto

// CreateClienteRequest alta de sitio de cliente (solo admin).
type CreateClienteRequest struct {
	Empresa        string `json:"empresa"`
	Direccion      string `json:"direccion"`
	Localidad      string `json:"localidad"`
	NombreContacto string `json:"nombreContacto"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// UpdateClienteRequest modificación de sitio de cliente.
type UpdateClienteRequest struct {
	Empresa        string `json:"empresa"`
	Direccion      string `json:"direccion"`
	Localidad      string `json:"localidad"`
	NombreContacto string `json:"nombreContacto"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// ClienteResponse sitio de cliente serializado.
type ClienteResponse struct {
	ID             string `json:"id"`
	Empresa        string `json:"empresa"`
	Direccion      string `json:"direccion"`
	Localidad      string `json:"localidad"`
	NombreContacto string `json:"nombreContacto"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
	MainCompanyID  string `json:"mainCompanyId"`
}
