package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// respondError traduce un error de dominio a la respuesta HTTP. Es el único
// punto de traducción error→status de toda la API: los handlers nunca eligen
// códigos a mano.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	de, ok := domain.AsError(err)
	if !ok {
		de = domain.Internal(err)
	}

	status := fiber.StatusInternalServerError
	switch de.Kind {
	case domain.KindValidation:
		status = fiber.StatusBadRequest
	case domain.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case domain.KindForbidden:
		status = fiber.StatusForbidden
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	case domain.KindConflict:
		status = fiber.StatusConflict
	}

	if de.Kind == domain.KindInternal {
		// La causa real solo va al log, nunca al cliente.
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Code:      de.Code,
		Message:   de.Message,
		Conflicts: de.Details,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msg})
}
