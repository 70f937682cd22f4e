package dto

// CreateUserRequest alta de usuario dentro del tenant (solo admin).
// Role debe ser admin o supervisor; super_admin solo nace por provisión.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
