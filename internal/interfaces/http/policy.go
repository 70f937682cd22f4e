package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// Recursos de la tabla de permisos.
const (
	ResourceEmployees  = "employees"
	ResourceClientes   = "clientes"
	ResourcePositions  = "positions"
	ResourceUsers      = "users"
	ResourceShifts     = "shifts"
	ResourceGeneration = "generation"
	ResourceSentinel   = "sentinelzone"
)

// writeRoles es la tabla declarativa de permisos de escritura por recurso.
// Las lecturas dentro del tenant son libres para cualquier usuario
// autenticado; lo que varía por rol es quién puede escribir qué.
// super_admin pasa todos los gates (opera a nivel plataforma).
var writeRoles = map[string][]string{
	ResourceEmployees:  {entity.RoleAdmin},
	ResourceClientes:   {entity.RoleAdmin},
	ResourcePositions:  {entity.RoleAdmin},
	ResourceUsers:      {entity.RoleAdmin},
	ResourceShifts:     {entity.RoleAdmin, entity.RoleSupervisor},
	ResourceGeneration: {entity.RoleAdmin},
	ResourceSentinel:   {}, // solo super_admin
}

// RequireWrite devuelve un middleware que consulta la tabla de permisos.
// Debe usarse DESPUÉS de SessionAuth (necesita el usuario en Locals).
func RequireWrite(resource string) fiber.Handler {
	allowed := writeRoles[resource]
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if user.IsSuperAdmin() {
			return c.Next()
		}
		for _, role := range allowed {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "tu rol no tiene permisos para esta operación",
		})
	}
}
