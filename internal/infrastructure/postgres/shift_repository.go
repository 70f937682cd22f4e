package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
//
// La tabla shifts lleva UNIQUE (employee_id, date): es la garantía final de
// "un turno por empleado y día" ante escrituras concurrentes. El scoping por
// tenant se resuelve vía JOIN con employees.
type ShiftRepo struct {
	pool *pgxpool.Pool
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(pool *pgxpool.Pool) *ShiftRepo {
	return &ShiftRepo{pool: pool}
}

// Create persiste un turno; traduce la violación de unicidad a domain.Conflict.
func (r *ShiftRepo) Create(ctx context.Context, s *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, employee_id, position_id, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, s.ID, s.EmployeeID, s.PositionID, s.Date, s.Notes, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el empleado ya tiene un turno asignado ese día", nil)
		}
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// Update actualiza un turno dentro del scoping.
func (r *ShiftRepo) Update(ctx context.Context, s *entity.Shift, mainCompanyID *string) error {
	query := `
		UPDATE shifts SET employee_id = $2, position_id = $3, date = $4, notes = $5
		WHERE id = $1 AND ($6::text IS NULL OR employee_id IN (
			SELECT id FROM employees WHERE main_company_id = $6))`
	cmd, err := r.pool.Exec(ctx, query, s.ID, s.EmployeeID, s.PositionID, s.Date, s.Notes, mainCompanyID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el empleado ya tiene un turno asignado ese día", nil)
		}
		return fmt.Errorf("update shift: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("turno no encontrado")
	}
	return nil
}

// Delete borra físicamente un turno dentro del scoping.
func (r *ShiftRepo) Delete(ctx context.Context, id string, mainCompanyID *string) error {
	query := `
		DELETE FROM shifts
		WHERE id = $1 AND ($2::text IS NULL OR employee_id IN (
			SELECT id FROM employees WHERE main_company_id = $2))`
	cmd, err := r.pool.Exec(ctx, query, id, mainCompanyID)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("turno no encontrado")
	}
	return nil
}

// GetByID obtiene un turno por ID dentro del scoping; nil si no existe.
func (r *ShiftRepo) GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Shift, error) {
	query := `
		SELECT s.id, s.employee_id, s.position_id, s.date, s.notes, s.created_at
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1 AND ($2::text IS NULL OR e.main_company_id = $2)`
	var s entity.Shift
	err := r.pool.QueryRow(ctx, query, id, mainCompanyID).Scan(
		&s.ID, &s.EmployeeID, &s.PositionID, &s.Date, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

const shiftDetailQuery = `
	SELECT s.id, s.employee_id, s.position_id, s.date, s.notes, s.created_at,
	       e.name, p.name, p.siglas, p.color, p.total_horas, c.id, c.empresa
	FROM shifts s
	JOIN employees e ON e.id = s.employee_id
	JOIN positions p ON p.id = s.position_id
	JOIN clientes c  ON c.id = p.cliente_id`

// ListRange devuelve los turnos del rango [from, to] con detalle relacional,
// ordenados por fecha y nombre de empleado.
func (r *ShiftRepo) ListRange(ctx context.Context, mainCompanyID *string, from, to time.Time) ([]*entity.ShiftDetail, error) {
	query := shiftDetailQuery + `
		WHERE s.date BETWEEN $1 AND $2
		  AND ($3::text IS NULL OR e.main_company_id = $3)
		ORDER BY s.date ASC, e.name ASC`
	rows, err := r.pool.Query(ctx, query, from, to, mainCompanyID)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var list []*entity.ShiftDetail
	for rows.Next() {
		d, err := scanShiftDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// FindConflicts busca turnos del mismo empleado en la misma fecha, excluyendo
// opcionalmente el turno que se está editando. Solo cuentan como conflicto
// los turnos de empleados activos con puesto vigente; la constraint UNIQUE
// sobre (employee_id, date) sigue siendo el respaldo final ante carreras.
func (r *ShiftRepo) FindConflicts(ctx context.Context, employeeID string, date time.Time, excludeShiftID string, mainCompanyID *string) ([]*entity.ShiftDetail, error) {
	query := shiftDetailQuery + `
		WHERE s.employee_id = $1 AND s.date = $2
		  AND e.status = 'active' AND p.deleted_at IS NULL
		  AND ($3 = '' OR s.id <> $3)
		  AND ($4::text IS NULL OR e.main_company_id = $4)`
	rows, err := r.pool.Query(ctx, query, employeeID, date, excludeShiftID, mainCompanyID)
	if err != nil {
		return nil, fmt.Errorf("find shift conflicts: %w", err)
	}
	defer rows.Close()

	var list []*entity.ShiftDetail
	for rows.Next() {
		d, err := scanShiftDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift conflict: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// SumHoursByEmployee suma las horas del puesto por empleado en el rango.
func (r *ShiftRepo) SumHoursByEmployee(ctx context.Context, mainCompanyID *string, from, to time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT s.employee_id, COALESCE(SUM(p.total_horas), 0)
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		JOIN positions p ON p.id = s.position_id
		WHERE s.date BETWEEN $1 AND $2
		  AND ($3::text IS NULL OR e.main_company_id = $3)
		GROUP BY s.employee_id`
	rows, err := r.pool.Query(ctx, query, from, to, mainCompanyID)
	if err != nil {
		return nil, fmt.Errorf("sum hours by employee: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var total decimal.Decimal
		if err := rows.Scan(&id, &total); err != nil {
			return nil, fmt.Errorf("scan hours sum: %w", err)
		}
		sums[id] = total
	}
	return sums, rows.Err()
}

// BatchCreate inserta los turnos en una transacción con ON CONFLICT DO
// NOTHING sobre (employee_id, date): si otra escritura ganó la carrera por un
// par, esa fila se omite y el resto del lote sigue. Devuelve las filas que
// efectivamente entraron.
func (r *ShiftRepo) BatchCreate(ctx context.Context, shifts []*entity.Shift) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const query = `
		INSERT INTO shifts (id, employee_id, position_id, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO NOTHING`

	inserted := 0
	for _, s := range shifts {
		cmd, err := tx.Exec(ctx, query, s.ID, s.EmployeeID, s.PositionID, s.Date, s.Notes, s.CreatedAt)
		if err != nil {
			return 0, fmt.Errorf("batch insert shift: %w", err)
		}
		inserted += int(cmd.RowsAffected())
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}
	return inserted, nil
}

func scanShiftDetail(row rowScanner) (*entity.ShiftDetail, error) {
	var d entity.ShiftDetail
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.PositionID, &d.Date, &d.Notes, &d.CreatedAt,
		&d.EmployeeName, &d.PositionName, &d.Siglas, &d.Color, &d.TotalHoras,
		&d.ClienteID, &d.ClienteNombre,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
