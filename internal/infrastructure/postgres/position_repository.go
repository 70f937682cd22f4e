package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

var _ repository.PositionRepository = (*PositionRepo)(nil)

// PositionRepo implementación del puerto PositionRepository sobre PostgreSQL.
// El tenant de un puesto se deriva de su cliente, por eso el scoping se
// resuelve con un JOIN contra clientes.
type PositionRepo struct {
	pool *pgxpool.Pool
}

// NewPositionRepository construye el adaptador de persistencia para puestos.
func NewPositionRepository(pool *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{pool: pool}
}

const positionColumns = `p.id, p.name, p.siglas, p.department, p.description, p.color, p.total_horas, p.cliente_id, p.created_at, p.updated_at, p.deleted_at`

// Create persiste un nuevo puesto. El nombre es único.
func (r *PositionRepo) Create(ctx context.Context, p *entity.Position) error {
	query := `
		INSERT INTO positions (id, name, siglas, department, description, color, total_horas, cliente_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Siglas, p.Department, p.Description, p.Color, p.TotalHoras, p.ClienteID,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("ya existe un puesto con ese nombre", nil)
		}
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// GetByID obtiene un puesto por ID dentro del scoping; nil si no existe,
// está borrado, o su cliente está borrado.
func (r *PositionRepo) GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Position, error) {
	query := `SELECT ` + positionColumns + `
		FROM positions p
		JOIN clientes c ON c.id = p.cliente_id AND c.deleted_at IS NULL
		WHERE p.id = $1 AND p.deleted_at IS NULL
		  AND ($2::text IS NULL OR c.main_company_id = $2)`
	p, err := scanPosition(r.pool.QueryRow(ctx, query, id, mainCompanyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return p, nil
}

// List lista puestos no borrados del tenant, opcionalmente de un solo cliente.
func (r *PositionRepo) List(ctx context.Context, mainCompanyID *string, clienteID string) ([]*entity.Position, error) {
	query := `SELECT ` + positionColumns + `
		FROM positions p
		JOIN clientes c ON c.id = p.cliente_id AND c.deleted_at IS NULL
		WHERE p.deleted_at IS NULL
		  AND ($1::text IS NULL OR c.main_company_id = $1)
		  AND ($2 = '' OR p.cliente_id = $2)
		ORDER BY p.name ASC`
	rows, err := r.pool.Query(ctx, query, mainCompanyID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un puesto existente dentro del scoping.
func (r *PositionRepo) Update(ctx context.Context, p *entity.Position, mainCompanyID *string) error {
	query := `
		UPDATE positions SET name = $2, siglas = $3, department = $4, description = $5,
			color = $6, total_horas = $7, cliente_id = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
		  AND ($10::text IS NULL OR cliente_id IN (
			SELECT id FROM clientes WHERE main_company_id = $10 AND deleted_at IS NULL))`
	cmd, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Siglas, p.Department, p.Description, p.Color, p.TotalHoras, p.ClienteID,
		p.UpdatedAt, mainCompanyID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("ya existe un puesto con ese nombre", nil)
		}
		return fmt.Errorf("update position: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("puesto no encontrado")
	}
	return nil
}

// SoftDelete marca deleted_at. Los turnos históricos del puesto no se tocan.
func (r *PositionRepo) SoftDelete(ctx context.Context, id string, mainCompanyID *string) error {
	query := `
		UPDATE positions SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		  AND ($2::text IS NULL OR cliente_id IN (
			SELECT id FROM clientes WHERE main_company_id = $2 AND deleted_at IS NULL))`
	cmd, err := r.pool.Exec(ctx, query, id, mainCompanyID)
	if err != nil {
		return fmt.Errorf("soft delete position: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("puesto no encontrado")
	}
	return nil
}

func scanPosition(row rowScanner) (*entity.Position, error) {
	var p entity.Position
	err := row.Scan(
		&p.ID, &p.Name, &p.Siglas, &p.Department, &p.Description, &p.Color, &p.TotalHoras,
		&p.ClienteID, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
