package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turnos-pro/internal/application/dto"
	"github.com/tu-usuario/turnos-pro/internal/domain/entity"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserLoader struct {
	users map[string]*entity.User
}

func (f *fakeUserLoader) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

type fakeSubscriptionChecker struct {
	active map[string]bool // por user.ID
	fail   map[string]bool // simula un fallo de infraestructura por user.ID
}

func (f *fakeSubscriptionChecker) CompanyStatus(_ context.Context, user *entity.User) (*dto.CompanyStatusResponse, error) {
	if f.fail[user.ID] {
		return nil, errors.New("db caída")
	}
	return &dto.CompanyStatusResponse{IsActive: f.active[user.ID]}, nil
}

func strPtr(s string) *string { return &s }

// testEnv app Fiber con sesiones en memoria, middlewares reales y handlers
// stub, suficiente para probar los tres gates sin base de datos.
type testEnv struct {
	app     *fiber.App
	store   *session.Store
	checker *fakeSubscriptionChecker
}

func newTestEnv(t *testing.T, users map[string]*entity.User, active map[string]bool) *testEnv {
	t.Helper()
	store := session.New(session.Config{KeyLookup: "cookie:turnos_sid"})
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	loader := &fakeUserLoader{users: users}
	checker := &fakeSubscriptionChecker{active: active}

	app := fiber.New()

	// Ruta de test para sembrar la sesión sin pasar por el login real.
	app.Post("/test-login/:id", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		require.NoError(t, err)
		sess.Set(sessionUserKey, c.Params("id"))
		return sess.Save()
	})

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	sessionGate := SessionAuth(store, loader, log)
	paymentGate := RequireActiveSubscription(checker, log)

	app.Get("/api/auth/me", sessionGate, ok)
	protected := app.Group("/api", sessionGate, paymentGate)
	protected.Get("/employees", ok)
	protected.Delete("/employees/:id", RequireWrite(ResourceEmployees), ok)
	protected.Post("/shifts", RequireWrite(ResourceShifts), ok)
	protected.Post("/shifts/generate-from-previous-month", RequireWrite(ResourceGeneration), ok)
	app.Get("/api/sentinelzone/main-companies", sessionGate, RequireWrite(ResourceSentinel), ok)

	return &testEnv{app: app, store: store, checker: checker}
}

// login siembra la sesión del usuario y devuelve su cookie.
func (e *testEnv) login(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/test-login/"+userID, nil)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == "turnos_sid" {
			return ck
		}
	}
	t.Fatal("no se recibió la cookie de sesión")
	return nil
}

func (e *testEnv) do(t *testing.T, method, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func testUsers() map[string]*entity.User {
	return map[string]*entity.User{
		"admin-1":  {ID: "admin-1", Role: entity.RoleAdmin, MainCompanyID: strPtr("c1")},
		"super-1":  {ID: "super-1", Role: entity.RoleSuperAdmin},
		"superv-1": {ID: "superv-1", Role: entity.RoleSupervisor, MainCompanyID: strPtr("c1")},
	}
}

func allActive() map[string]bool {
	return map[string]bool{"admin-1": true, "superv-1": true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Sin cookie de sesión todo lo protegido responde 401.
func TestSessionAuth_SinSesion(t *testing.T) {
	env := newTestEnv(t, testUsers(), allActive())
	resp := env.do(t, fiber.MethodGet, "/api/employees", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Una sesión cuyo usuario fue borrado es obsoleta: 401, no 500.
func TestSessionAuth_SesionObsoleta(t *testing.T) {
	users := testUsers()
	env := newTestEnv(t, users, allActive())
	cookie := env.login(t, "admin-1")

	delete(users, "admin-1")

	resp := env.do(t, fiber.MethodGet, "/api/employees", cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// El supervisor puede leer y crear turnos, pero no escribir empleados ni
// generar el mes.
func TestPolicy_Supervisor(t *testing.T) {
	env := newTestEnv(t, testUsers(), allActive())
	cookie := env.login(t, "superv-1")

	resp := env.do(t, fiber.MethodGet, "/api/employees", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "lectura libre dentro del tenant")

	resp = env.do(t, fiber.MethodPost, "/api/shifts", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "supervisor escribe turnos")

	resp = env.do(t, fiber.MethodDelete, "/api/employees/e1", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "solo admin escribe empleados")

	resp = env.do(t, fiber.MethodPost, "/api/shifts/generate-from-previous-month", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "solo admin genera el mes")
}

// El admin escribe empleados y genera el mes; el sentinel zone le queda vedado.
func TestPolicy_Admin(t *testing.T) {
	env := newTestEnv(t, testUsers(), allActive())
	cookie := env.login(t, "admin-1")

	resp := env.do(t, fiber.MethodDelete, "/api/employees/e1", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/shifts/generate-from-previous-month", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodGet, "/api/sentinelzone/main-companies", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// super_admin pasa todos los gates, incluido el sentinel zone.
func TestPolicy_SuperAdmin(t *testing.T) {
	env := newTestEnv(t, testUsers(), allActive())
	cookie := env.login(t, "super-1")

	resp := env.do(t, fiber.MethodGet, "/api/sentinelzone/main-companies", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodDelete, "/api/employees/e1", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Con la suscripción vencida las rutas de tenant responden 403, pero /me
// sigue accesible para que la UI muestre el estado de bloqueo.
func TestPaymentGate_SuscripcionVencida(t *testing.T) {
	env := newTestEnv(t, testUsers(), map[string]bool{"admin-1": false})
	cookie := env.login(t, "admin-1")

	resp := env.do(t, fiber.MethodGet, "/api/employees", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.do(t, fiber.MethodGet, "/api/auth/me", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Un fallo de infraestructura al consultar la suscripción responde el 500
// genérico del traductor de errores, sin filtrar la causa al cliente.
func TestPaymentGate_FalloDeConsulta(t *testing.T) {
	env := newTestEnv(t, testUsers(), allActive())
	env.checker.fail = map[string]bool{"admin-1": true}
	cookie := env.login(t, "admin-1")

	resp := env.do(t, fiber.MethodGet, "/api/employees", cookie)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

// super_admin no pertenece a ningún tenant: el payment gate no lo toca.
func TestPaymentGate_SuperAdminExento(t *testing.T) {
	env := newTestEnv(t, testUsers(), map[string]bool{})
	cookie := env.login(t, "super-1")

	resp := env.do(t, fiber.MethodGet, "/api/employees", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
