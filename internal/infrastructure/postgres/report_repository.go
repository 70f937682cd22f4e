package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only de reportes sobre PostgreSQL.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de lectura para reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// EmployeeHours agrega horas y cantidad de turnos por empleado, con filtros
// opcionales por rango de fechas, empleado y cliente, ordenado por horas
// descendente.
func (r *ReportRepo) EmployeeHours(ctx context.Context, f repository.ReportFilter) ([]repository.EmployeeHoursRow, error) {
	query := `
		SELECT e.id, e.name, COUNT(*), COALESCE(SUM(p.total_horas), 0)
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		JOIN positions p ON p.id = s.position_id
		JOIN clientes c  ON c.id = p.cliente_id
		WHERE ($1::date IS NULL OR s.date >= $1)
		  AND ($2::date IS NULL OR s.date <= $2)
		  AND ($3::text IS NULL OR e.main_company_id = $3)
		  AND ($4 = '' OR e.id = $4)
		  AND ($5 = '' OR c.id = $5)
		GROUP BY e.id, e.name
		ORDER BY SUM(p.total_horas) DESC, e.name ASC`
	rows, err := r.pool.Query(ctx, query, f.From, f.To, f.MainCompanyID, f.EmployeeID, f.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("report employee hours: %w", err)
	}
	defer rows.Close()

	var list []repository.EmployeeHoursRow
	for rows.Next() {
		var row repository.EmployeeHoursRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.TotalShifts, &row.TotalHoras); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
