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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
// Borrado lógico vía deleted_at; empresa_search guarda el nombre normalizado.
type ClienteRepo struct {
	pool *pgxpool.Pool
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(pool *pgxpool.Pool) *ClienteRepo {
	return &ClienteRepo{pool: pool}
}

const clienteColumns = `id, empresa, direccion, localidad, nombre_contacto, telefono, email, main_company_id, created_at, updated_at, deleted_at`

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, empresa, empresa_search, direccion, localidad, nombre_contacto, telefono, email, main_company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Empresa, normalize.Search(c.Empresa), c.Direccion, c.Localidad,
		c.NombreContacto, c.Telefono, c.Email, c.MainCompanyID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID dentro del scoping; nil si no existe o
// está borrado.
func (r *ClienteRepo) GetByID(ctx context.Context, id string, mainCompanyID *string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes
		WHERE id = $1 AND deleted_at IS NULL AND ($2::text IS NULL OR main_company_id = $2)`
	c, err := scanCliente(r.pool.QueryRow(ctx, query, id, mainCompanyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// List lista clientes no borrados del tenant, con búsqueda normalizada opcional.
func (r *ClienteRepo) List(ctx context.Context, mainCompanyID *string, search string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes
		WHERE deleted_at IS NULL
		  AND ($1::text IS NULL OR main_company_id = $1)
		  AND ($2 = '' OR empresa_search LIKE '%' || $2 || '%')
		ORDER BY empresa ASC`
	rows, err := r.pool.Query(ctx, query, mainCompanyID, normalize.Search(search))
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente, manteniendo empresa_search sincronizada.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente, mainCompanyID *string) error {
	query := `
		UPDATE clientes SET empresa = $2, empresa_search = $3, direccion = $4, localidad = $5,
			nombre_contacto = $6, telefono = $7, email = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL AND ($10::text IS NULL OR main_company_id = $10)`
	cmd, err := r.pool.Exec(ctx, query,
		c.ID, c.Empresa, normalize.Search(c.Empresa), c.Direccion, c.Localidad,
		c.NombreContacto, c.Telefono, c.Email, c.UpdatedAt, mainCompanyID,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("cliente no encontrado")
	}
	return nil
}

// SoftDelete marca deleted_at. Los puestos del cliente siguen existiendo pero
// dejan de listarse porque sus consultas filtran por cliente no borrado.
func (r *ClienteRepo) SoftDelete(ctx context.Context, id string, mainCompanyID *string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE clientes SET deleted_at = now()
		 WHERE id = $1 AND deleted_at IS NULL AND ($2::text IS NULL OR main_company_id = $2)`,
		id, mainCompanyID)
	if err != nil {
		return fmt.Errorf("soft delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("cliente no encontrado")
	}
	return nil
}

func scanCliente(row rowScanner) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.Empresa, &c.Direccion, &c.Localidad, &c.NombreContacto, &c.Telefono, &c.Email,
		&c.MainCompanyID, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
