package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalUser = "current_user"
)

// Clave de la sesión server-side donde se guarda el ID del usuario logueado.
const sessionUserKey = "user_id"

// userLoader es el contrato mínimo que necesita el middleware para cargar el
// usuario de la sesión. Lo implementa postgres.UserRepo; la interfaz evita
// acoplar el middleware al repo concreto.
type userLoader interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// SessionAuth valida la cookie de sesión y carga el usuario a c.Locals.
// Una sesión cuyo usuario ya no existe (borrado mientras estaba logueado) se
// destruye y responde 401: la sesión está obsoleta, no inválida a secas.
func SessionAuth(store *session.Store, users userLoader, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Error().Err(err).Msg("no se pudo leer la sesión")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
		}

		userID, _ := sess.Get(sessionUserKey).(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("no se pudo cargar el usuario de la sesión")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		if user == nil {
			_ = sess.Destroy()
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "la sesión ya no es válida"})
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario de la sesión (después de SessionAuth).
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// TenantScope devuelve el scoping por tenant del usuario actual: nil para
// super_admin (sin filtro), el MainCompanyID para el resto.
func TenantScope(c *fiber.Ctx) *string {
	u := CurrentUser(c)
	if u == nil || u.IsSuperAdmin() {
		return nil
	}
	return u.MainCompanyID
}
