package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// subscriptionChecker es el contrato mínimo que necesita el middleware para
// verificar la suscripción del tenant. Lo implementa *auth.UseCase; el uso de
// interfaz evita el import circular.
type subscriptionChecker interface {
	CompanyStatus(ctx context.Context, user *entity.User) (*dto.CompanyStatusResponse, error)
}

// RequireActiveSubscription devuelve un middleware que bloquea a los tenants
// inactivos o con el pago vencido. Debe usarse DESPUÉS de SessionAuth.
//
// Comportamiento:
//   - super_admin pasa siempre (no pertenece a ningún tenant).
//   - 403 Forbidden → suscripción vencida o empresa desactivada a mano.
//   - 500 Internal → fallo de infraestructura al consultar la DB.
//
// Las rutas de /api/auth quedan fuera del gate a nivel router: un usuario
// con la empresa vencida todavía puede ver su estado en /me y cerrar sesión.
func RequireActiveSubscription(checker subscriptionChecker, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if user.IsSuperAdmin() {
			return c.Next()
		}

		status, err := checker.CompanyStatus(c.Context(), user)
		if err != nil {
			return respondError(c, log, fmt.Errorf("verificar suscripción del usuario %s: %w", user.ID, err))
		}
		if status == nil || !status.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_INACTIVE",
				Message: "la empresa está inactiva o con el pago vencido",
			})
		}
		return c.Next()
	}
}
