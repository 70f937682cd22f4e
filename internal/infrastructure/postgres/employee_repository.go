package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
	"github.com/tu-usuario/turnos-pro/pkg/normalize"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// La columna name_search guarda el nombre normalizado (minúsculas, sin tildes)
// para búsquedas insensibles a diacríticos.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `id, name, email, phone, status, main_company_id, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, name_search, email, phone, status, main_company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Name, normalize.Search(e.Name), e.Email, e.Phone, e.Status, e.MainCompanyID,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID dentro del scoping; nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE id = $1 AND ($2::text IS NULL OR main_company_id = $2)`
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, id, mainCompanyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List lista empleados del tenant, opcionalmente filtrados por búsqueda
// normalizada por prefijo o substring del nombre.
func (r *EmployeeRepo) List(ctx context.Context, mainCompanyID *string, search string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE ($1::text IS NULL OR main_company_id = $1)
		  AND ($2 = '' OR name_search LIKE '%' || $2 || '%')
		ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query, mainCompanyID, normalize.Search(search))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado, manteniendo name_search sincronizada.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee, mainCompanyID *string) error {
	query := `
		UPDATE employees SET name = $2, name_search = $3, email = $4, phone = $5, status = $6, updated_at = $7
		WHERE id = $1 AND ($8::text IS NULL OR main_company_id = $8)`
	cmd, err := r.pool.Exec(ctx, query,
		e.ID, e.Name, normalize.Search(e.Name), e.Email, e.Phone, e.Status, e.UpdatedAt, mainCompanyID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("empleado no encontrado")
	}
	return nil
}

// SetStatus cambia el estado (active/inactive). Los empleados nunca se borran
// físicamente: sus turnos históricos los referencian.
func (r *EmployeeRepo) SetStatus(ctx context.Context, id, status string, mainCompanyID *string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE employees SET status = $2, updated_at = now()
		 WHERE id = $1 AND ($3::text IS NULL OR main_company_id = $3)`,
		id, status, mainCompanyID)
	if err != nil {
		return fmt.Errorf("set employee status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("empleado no encontrado")
	}
	return nil
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Status, &e.MainCompanyID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
