package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/turnos-pro/internal/domain"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Acepta el pool o una transacción (lo usa TxRunner durante la provisión).
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, username, password_hash, role, main_company_id, must_change_password, created_at, updated_at`

// Create persiste un nuevo usuario. El username es único a nivel plataforma.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role, main_company_id, must_change_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.Role, u.MainCompanyID, u.MustChangePassword,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el nombre de usuario ya existe", nil)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username exacto; nil si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// List lista usuarios. Con scoping devuelve solo los del tenant; sin scoping
// (super_admin) devuelve todos.
func (r *UserRepo) List(ctx context.Context, mainCompanyID *string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ($1::text IS NULL OR main_company_id = $1) ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, mainCompanyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET username = $2, password_hash = $3, role = $4, must_change_password = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.Role, u.MustChangePassword, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el nombre de usuario ya existe", nil)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("usuario no encontrado")
	}
	return nil
}

// Delete elimina físicamente un usuario dentro del scoping dado.
func (r *UserRepo) Delete(ctx context.Context, id string, mainCompanyID *string) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1 AND ($2::text IS NULL OR main_company_id = $2)`,
		id, mainCompanyID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("usuario no encontrado")
	}
	return nil
}

// FirstAdminByCompany devuelve el admin más antiguo del tenant (el que nació
// con la provisión); nil si no queda ninguno.
func (r *UserRepo) FirstAdminByCompany(ctx context.Context, mainCompanyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE main_company_id = $1 AND role = $2
		ORDER BY created_at ASC LIMIT 1`
	u, err := scanUser(r.db.QueryRow(ctx, query, mainCompanyID, entity.RoleAdmin))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first admin: %w", err)
	}
	return u, nil
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.MainCompanyID, &u.MustChangePassword,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
