package postgres

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	pgstorage "github.com/gofiber/storage/postgres/v3"

	"github.com/tu-usuario/turnos-pro/pkg/config"
)

// NewSessionStore crea el store de sesiones server-side: cookie opaca en el
// navegador, datos en una tabla PostgreSQL. La vigencia por defecto es la de
// un login sin "recordarme"; el handler de login la extiende por sesión
// cuando rememberMe es true.
func NewSessionStore(dbCfg config.DBConfig, sessCfg config.SessionConfig) *session.Store {
	storage := pgstorage.New(pgstorage.Config{
		ConnectionURI: dbCfg.ConnectionString(),
		Table:         sessCfg.Table,
		Reset:         false,
		GCInterval:    10 * time.Minute,
	})

	return session.New(session.Config{
		Storage:        storage,
		Expiration:     sessCfg.TTL,
		KeyLookup:      "cookie:" + sessCfg.CookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
