package dto

import "time"

// ErrorResponse cuerpo de error HTTP. Conflicts solo se llena en 409 de
// turnos (lista de turnos que chocan); Fields solo en errores de validación.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Conflicts any               `json:"conflicts,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// DateLayout formato de fecha calendario del API (sin hora ni zona).
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha calendario plana del API. Sin zona horaria:
// "2025-03-01" es el 1 de marzo para todo el mundo.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate serializa una fecha calendario del API.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr como FormatDate pero tolera nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
