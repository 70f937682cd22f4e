package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
)

// defaultHourBudget presupuesto de horas mensual cuando el empleado no tiene
// datos del mes anterior.
var defaultHourBudget = decimal.NewFromInt(160)

// GenerateFromPreviousMonth crea los turnos del mes destino copiando el
// patrón del mes anterior, acotado por un presupuesto de horas por empleado.
// Devuelve cuántos turnos se insertaron realmente.
//
// Reglas:
//
//   - El presupuesto de cada empleado son sus horas totales del mes anterior
//     (160 si no trabajó ese mes) y queda fijo al inicio de la generación.
//   - Cada turno del mes anterior se desplaza exactamente un mes calendario;
//     si la fecha no existe en el mes destino (31 ene → feb) se descarta.
//   - Los pares (empleado, fecha) ya ocupados en el mes destino se saltan, y
//     sus horas ya asignadas cuentan contra el presupuesto desde el inicio.
//   - Un candidato que excedería el presupuesto se salta sin consumir horas.
//   - El insert del lote es best-effort: si otra escritura concurrente ganó
//     la carrera por un par, esa fila se omite y el resto sigue.
func (uc *UseCase) GenerateFromPreviousMonth(ctx context.Context, scope *string, month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, domain.Validation("month debe estar entre 1 y 12")
	}
	if year < 2000 || year > 2100 {
		return 0, domain.Validation("year fuera de rango")
	}

	targetFrom, targetTo := MonthRange(year, time.Month(month))
	prevFrom, prevTo := MonthRange(targetFrom.AddDate(0, -1, 0).Year(), targetFrom.AddDate(0, -1, 0).Month())

	templates, err := uc.shifts.ListRange(ctx, scope, prevFrom, prevTo)
	if err != nil {
		return 0, err
	}
	if len(templates) == 0 {
		return 0, nil
	}

	// Presupuesto por empleado: horas totales del mes anterior, fijado aquí
	// y nunca recalculado durante la generación.
	budgets, err := uc.shifts.SumHoursByEmployee(ctx, scope, prevFrom, prevTo)
	if err != nil {
		return 0, err
	}

	existing, err := uc.shifts.ListRange(ctx, scope, targetFrom, targetTo)
	if err != nil {
		return 0, err
	}
	occupied := make(map[string]bool, len(existing))
	used := make(map[string]decimal.Decimal) // horas ya acumuladas en el mes destino
	for _, s := range existing {
		occupied[pairKey(s.EmployeeID, s.Date)] = true
		used[s.EmployeeID] = used[s.EmployeeID].Add(s.TotalHoras)
	}

	var toInsert []*entity.Shift
	now := uc.now()
	for _, tpl := range templates {
		// Desplazamiento de un mes calendario: se conserva el día del mes.
		// time.Date normaliza los días inexistentes (30 feb → 2 mar), así que
		// basta comprobar que la fecha siga dentro del mes destino.
		shifted := time.Date(year, time.Month(month), tpl.Date.Day(), 0, 0, 0, 0, time.UTC)
		if shifted.Month() != time.Month(month) || shifted.Year() != year {
			continue
		}
		key := pairKey(tpl.EmployeeID, shifted)
		if occupied[key] {
			continue
		}

		budget, ok := budgets[tpl.EmployeeID]
		if !ok {
			budget = defaultHourBudget
		}
		if used[tpl.EmployeeID].Add(tpl.TotalHoras).GreaterThan(budget) {
			uc.log.Debug().
				Str("employee_id", tpl.EmployeeID).
				Str("date", shifted.Format("2006-01-02")).
				Str("budget", budget.String()).
				Msg("turno candidato descartado por presupuesto de horas")
			continue
		}

		toInsert = append(toInsert, &entity.Shift{
			ID:         uuid.New().String(),
			EmployeeID: tpl.EmployeeID,
			PositionID: tpl.PositionID,
			Date:       shifted,
			CreatedAt:  now,
		})
		used[tpl.EmployeeID] = used[tpl.EmployeeID].Add(tpl.TotalHoras)
		occupied[key] = true
	}

	if len(toInsert) == 0 {
		return 0, nil
	}
	return uc.shifts.BatchCreate(ctx, toInsert)
}

func pairKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}
