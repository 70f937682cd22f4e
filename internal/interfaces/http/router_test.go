package http

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// El contrato de rutas es público: los clientes dependen de estos paths,
// métodos y nombres tal cual. Este test fija la tabla para que un rename
// accidental no pase desapercibido.
func TestRouter_ContratoDeRutas(t *testing.T) {
	app := fiber.New()
	Router(app, RouterDeps{
		SessionStore: session.New(session.Config{KeyLookup: "cookie:turnos_sid"}),
		Log:          logger.New(logger.Config{Env: "test", Level: "error"}),
	})

	registered := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		// Fiber registra los índices de grupo con barra final ("/api/shifts/");
		// con el routing no estricto responden también sin ella, así que se
		// normaliza para comparar contra el contrato.
		path := r.Path
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		registered[r.Method+" "+path] = true
	}

	want := []string{
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"GET /api/auth/me",
		"POST /api/auth/set-password",
		"GET /api/shifts",
		"POST /api/shifts",
		"PUT /api/shifts/:id",
		"DELETE /api/shifts/:id",
		"POST /api/shifts/generate-from-previous-month",
		"GET /api/reports/employee-hours",
		"GET /api/reports/employee-hours/xlsx",
		"GET /api/reports/employee-hours/pdf",
		"POST /api/sentinelzone/main-companies",
		"GET /api/sentinelzone/main-companies",
		"GET /api/sentinelzone/main-companies/:id",
		"PUT /api/sentinelzone/main-companies/:id",
		"DELETE /api/sentinelzone/main-companies/:id",
		"PUT /api/sentinelzone/main-companies/:id/reset-admin-password",
		"GET /api/sentinelzone/login-history",
	}
	for _, w := range want {
		assert.True(t, registered[w], "falta la ruta %s", w)
	}

	// Variantes renombradas que no deben existir.
	assert.False(t, registered["POST /api/shifts/generate"])
	assert.False(t, registered["POST /api/sentinelzone/companies"])
	assert.False(t, registered["POST /api/sentinelzone/main-companies/:id/reset-admin-password"])
}
