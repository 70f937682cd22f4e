package entity

import "time"

// Roles válidos para User. Conjunto fijo de tres valores.
const (
	RoleSuperAdmin = "super_admin" // plataforma, sin tenant
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
)

// User representa un usuario del sistema. super_admin tiene MainCompanyID nil
// (opera a nivel plataforma); admin y supervisor pertenecen siempre a una
// MainCompany. El borrado de usuarios es físico, salvo que el propio usuario
// nunca puede borrarse a sí mismo.
type User struct {
	ID                 string
	Username           string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Role               string // super_admin, admin, supervisor
	MainCompanyID      *string
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsSuperAdmin indica si el usuario opera fuera del scoping por tenant.
func (u *User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }
