package entity

import "time"

// LoginHistory es el registro de auditoría de inicios de sesión: se escribe
// una vez por login exitoso y solo se lee agregado (series diarias) en el
// dashboard del sentinel zone.
type LoginHistory struct {
	ID             string
	UserID         string
	MainCompanyID  *string // nil para super_admin
	IPAddress      string
	LoginTimestamp time.Time
}
