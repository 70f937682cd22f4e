package dto

import "github.com/shopspring/decimal"

// CreatePositionRequest alta de puesto dentro de un cliente (solo admin).
type CreatePositionRequest struct {
	Name        string          `json:"name"`
	Siglas      string          `json:"siglas"`
	Department  string          `json:"department"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	TotalHoras  decimal.Decimal `json:"totalHoras"`
	ClienteID   string          `json:"clienteId"`
}

// UpdatePositionRequest modificación de puesto.
type UpdatePositionRequest struct {
	Name        string          `json:"name"`
	Siglas      string          `json:"siglas"`
	Department  string          `json:"department"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	TotalHoras  decimal.Decimal `json:"totalHoras"`
}

// PositionResponse puesto serializado.
type PositionResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Siglas      string          `json:"siglas"`
	Department  string          `json:"department"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	TotalHoras  decimal.Decimal `json:"totalHoras"`
	ClienteID   string          `json:"clienteId"`
}
