package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/internal/domain/repository"
)

var _ repository.LoginHistoryRepository = (*LoginHistoryRepo)(nil)

// LoginHistoryRepo implementación del puerto LoginHistoryRepository sobre
// PostgreSQL. Tabla append-only, se lee solo agregada por día.
type LoginHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewLoginHistoryRepository construye el adaptador del log de logins.
func NewLoginHistoryRepository(pool *pgxpool.Pool) *LoginHistoryRepo {
	return &LoginHistoryRepo{pool: pool}
}

// Append registra un login exitoso.
func (r *LoginHistoryRepo) Append(ctx context.Context, rec *entity.LoginHistory) error {
	query := `
		INSERT INTO login_history (id, user_id, main_company_id, ip_address, login_timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, rec.ID, rec.UserID, rec.MainCompanyID, rec.IPAddress, rec.LoginTimestamp)
	if err != nil {
		return fmt.Errorf("insert login_history: %w", err)
	}
	return nil
}

// CountByDay agrega logins por día calendario en [from, to). Solo devuelve
// los días con al menos un login; el relleno a cero es del caso de uso.
func (r *LoginHistoryRepo) CountByDay(ctx context.Context, from, to time.Time) ([]repository.DailyLoginCount, error) {
	query := `
		SELECT date_trunc('day', login_timestamp)::date AS day, COUNT(*)
		FROM login_history
		WHERE login_timestamp >= $1 AND login_timestamp < $2
		GROUP BY day
		ORDER BY day ASC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("count logins by day: %w", err)
	}
	defer rows.Close()

	var counts []repository.DailyLoginCount
	for rows.Next() {
		var c repository.DailyLoginCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, fmt.Errorf("scan login count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
