package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

// LoginHistoryUseCase series agregadas de logins para el dashboard del
// sentinel zone. Siempre devuelve una serie diaria rellenada a cero.
type LoginHistoryUseCase struct {
	repo repository.LoginHistoryRepository
	now  func() time.Time
}

// NewLoginHistoryUseCase construye el caso de uso con el puerto de persistencia.
func NewLoginHistoryUseCase(repo repository.LoginHistoryRepository) *LoginHistoryUseCase {
	return &LoginHistoryUseCase{repo: repo, now: time.Now}
}

// Series devuelve la cantidad de logins por día en la ventana pedida.
// Ventanas relativas terminan hoy: day = solo hoy, week = 7 días,
// month = 30 días, year = 365 días. custom exige startDate y endDate.
func (uc *LoginHistoryUseCase) Series(ctx context.Context, period, startDate, endDate string) (*dto.LoginHistoryResponse, error) {
	today := truncateToDay(uc.now())

	var from, to time.Time
	switch period {
	case "day":
		from, to = today, today
	case "week":
		from, to = today.AddDate(0, 0, -6), today
	case "month":
		from, to = today.AddDate(0, 0, -29), today
	case "year":
		from, to = today.AddDate(0, 0, -364), today
	case "custom":
		if startDate == "" || endDate == "" {
			return nil, domain.Validation("startDate y endDate son requeridos con period=custom")
		}
		var err error
		from, err = dto.ParseDate(startDate)
		if err != nil {
			return nil, domain.Validation("startDate debe tener formato YYYY-MM-DD")
		}
		to, err = dto.ParseDate(endDate)
		if err != nil {
			return nil, domain.Validation("endDate debe tener formato YYYY-MM-DD")
		}
		if to.Before(from) {
			return nil, domain.Validation("endDate no puede ser anterior a startDate")
		}
	default:
		return nil, domain.Validation("period debe ser day, week, month, year o custom")
	}

	counts, err := uc.repo.CountByDay(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int, len(counts))
	for _, c := range counts {
		byDay[dto.FormatDate(c.Day)] = c.Count
	}

	// Relleno a cero: el dashboard grafica la serie completa, con huecos no.
	var items []dto.LoginHistoryPoint
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := dto.FormatDate(d)
		items = append(items, dto.LoginHistoryPoint{Date: key, Count: byDay[key]})
	}

	return &dto.LoginHistoryResponse{
		Period: period,
		From:   dto.FormatDate(from),
		To:     dto.FormatDate(to),
		Items:  items,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
