package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

// Asegura que MainCompanyRepo implementa repository.MainCompanyRepository.
var _ repository.MainCompanyRepository = (*MainCompanyRepo)(nil)

// MainCompanyRepo implementación del puerto MainCompanyRepository sobre PostgreSQL.
// Todas las lecturas excluyen filas con deleted_at no nulo.
type MainCompanyRepo struct {
	db querier
}

// NewMainCompanyRepository construye el adaptador de persistencia para tenants.
// Acepta el pool o una transacción (lo usa TxRunner durante la provisión).
func NewMainCompanyRepository(db querier) *MainCompanyRepo {
	return &MainCompanyRepo{db: db}
}

const companyColumns = `
	id, name, payment_control, last_payment_date, is_active, needs_setup,
	country, province, city, address, tax_id, contact_name, phone, email,
	created_at, updated_at, deleted_at`

// Create persiste un nuevo tenant. El nombre es único a nivel plataforma.
func (r *MainCompanyRepo) Create(ctx context.Context, c *entity.MainCompany) error {
	query := `
		INSERT INTO main_companies (id, name, payment_control, last_payment_date, is_active, needs_setup,
			country, province, city, address, tax_id, contact_name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.PaymentControl, c.LastPaymentDate, c.IsActive, c.NeedsSetup,
		c.Country, c.Province, c.City, c.Address, c.TaxID, c.ContactName, c.Phone, c.Email,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("ya existe una empresa con ese nombre", nil)
		}
		return fmt.Errorf("insert main_company: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID; nil si no existe o está borrado.
func (r *MainCompanyRepo) GetByID(ctx context.Context, id string) (*entity.MainCompany, error) {
	query := `SELECT ` + companyColumns + ` FROM main_companies WHERE id = $1 AND deleted_at IS NULL`
	c, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get main_company: %w", err)
	}
	return c, nil
}

// GetByName obtiene un tenant por nombre exacto; nil si no existe.
func (r *MainCompanyRepo) GetByName(ctx context.Context, name string) (*entity.MainCompany, error) {
	query := `SELECT ` + companyColumns + ` FROM main_companies WHERE name = $1 AND deleted_at IS NULL`
	c, err := scanCompany(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get main_company by name: %w", err)
	}
	return c, nil
}

// List devuelve todos los tenants no borrados, más recientes primero.
func (r *MainCompanyRepo) List(ctx context.Context) ([]*entity.MainCompany, error) {
	query := `SELECT ` + companyColumns + ` FROM main_companies WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list main_companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.MainCompany
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan main_company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un tenant existente.
func (r *MainCompanyRepo) Update(ctx context.Context, c *entity.MainCompany) error {
	query := `
		UPDATE main_companies SET name = $2, payment_control = $3, last_payment_date = $4,
			is_active = $5, needs_setup = $6, country = $7, province = $8, city = $9,
			address = $10, tax_id = $11, contact_name = $12, phone = $13, email = $14, updated_at = $15
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.PaymentControl, c.LastPaymentDate, c.IsActive, c.NeedsSetup,
		c.Country, c.Province, c.City, c.Address, c.TaxID, c.ContactName, c.Phone, c.Email, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("ya existe una empresa con ese nombre", nil)
		}
		return fmt.Errorf("update main_company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("empresa no encontrada")
	}
	return nil
}

// SoftDelete marca deleted_at; las filas hijas (usuarios, empleados, turnos)
// no se tocan, quedan inaccesibles porque el login del tenant queda bloqueado.
func (r *MainCompanyRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE main_companies SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete main_company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("empresa no encontrada")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.MainCompany, error) {
	var c entity.MainCompany
	err := row.Scan(
		&c.ID, &c.Name, &c.PaymentControl, &c.LastPaymentDate, &c.IsActive, &c.NeedsSetup,
		&c.Country, &c.Province, &c.City, &c.Address, &c.TaxID, &c.ContactName, &c.Phone, &c.Email,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
