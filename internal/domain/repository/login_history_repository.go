package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// DailyLoginCount cantidad de logins de un día calendario.
type DailyLoginCount struct {
	Day   time.Time
	Count int
}

// LoginHistoryRepository define el puerto del log de auditoría de logins.
// Append-only: se escribe en cada login exitoso y se lee solo agregado.
type LoginHistoryRepository interface {
	Append(ctx context.Context, rec *entity.LoginHistory) error
	// CountByDay devuelve los días del rango que tuvieron al menos un login;
	// los días sin filas los rellena a cero el caso de uso.
	CountByDay(ctx context.Context, from, to time.Time) ([]DailyLoginCount, error)
}
