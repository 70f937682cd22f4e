package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

var _ usecase.ProvisionRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProvision inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. Se usa para provisionar empresa + primer admin:
// nacen juntos o no nace ninguno.
func (r *TxRunner) RunProvision(ctx context.Context, fn func(
	companies repository.MainCompanyRepository,
	users repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewMainCompanyRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(companyRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
