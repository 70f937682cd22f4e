package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/turnos-pro/internal/application/auth"
	"github.com/tu-usuario/turnos-pro/internal/application/reports"
	"github.com/tu-usuario/turnos-pro/internal/application/scheduling"
	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	EmployeeUC     *usecase.EmployeeUseCase
	ClienteUC      *usecase.ClienteUseCase
	PositionUC     *usecase.PositionUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	LoginHistoryUC *usecase.LoginHistoryUseCase
	ShiftUC        *scheduling.UseCase
	ReportUC       *reports.UseCase

	SessionStore *session.Store
	Users        userLoader        // carga del usuario de la sesión
	Companies    companyNameLoader // membrete del PDF
	RememberTTL  time.Duration
	Log          *logger.Logger
}

// Router registra las rutas de la API. Orden de gates en las rutas de tenant:
// sesión → suscripción → permisos por rol. /api/auth queda fuera del gate de
// suscripción para que un tenant vencido pueda ver su estado y cerrar sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	sessionGate := SessionAuth(deps.SessionStore, deps.Users, deps.Log)
	paymentGate := RequireActiveSubscription(deps.AuthUC, deps.Log)

	// Auth: login es público; el resto solo exige sesión.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionStore, deps.RememberTTL, deps.Log)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", sessionGate, authHandler.Logout)
	authGroup.Get("/me", sessionGate, authHandler.Me)
	authGroup.Post("/set-password", sessionGate, authHandler.SetPassword)

	// Rutas de tenant (sesión + suscripción activa).
	protected := api.Group("/", sessionGate, paymentGate)

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Log)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", RequireWrite(ResourceEmployees), employeeHandler.Create)
	employees.Put("/:id", RequireWrite(ResourceEmployees), employeeHandler.Update)
	employees.Delete("/:id", RequireWrite(ResourceEmployees), employeeHandler.Deactivate)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Log)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/", RequireWrite(ResourceClientes), clienteHandler.Create)
	clientes.Put("/:id", RequireWrite(ResourceClientes), clienteHandler.Update)
	clientes.Delete("/:id", RequireWrite(ResourceClientes), clienteHandler.Delete)

	positions := protected.Group("/positions")
	positionHandler := NewPositionHandler(deps.PositionUC, deps.Log)
	positions.Get("/", positionHandler.List)
	positions.Get("/:id", positionHandler.GetByID)
	positions.Post("/", RequireWrite(ResourcePositions), positionHandler.Create)
	positions.Put("/:id", RequireWrite(ResourcePositions), positionHandler.Update)
	positions.Delete("/:id", RequireWrite(ResourcePositions), positionHandler.Delete)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", RequireWrite(ResourceUsers), userHandler.Create)
	users.Delete("/:id", RequireWrite(ResourceUsers), userHandler.Delete)

	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC, deps.Log)
	shifts.Get("/", shiftHandler.List)
	shifts.Post("/generate-from-previous-month", RequireWrite(ResourceGeneration), shiftHandler.Generate)
	shifts.Post("/", RequireWrite(ResourceShifts), shiftHandler.Create)
	shifts.Put("/:id", RequireWrite(ResourceShifts), shiftHandler.Update)
	shifts.Delete("/:id", RequireWrite(ResourceShifts), shiftHandler.Delete)

	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Companies, deps.Log)
	reportsGroup.Get("/employee-hours", reportHandler.EmployeeHours)
	reportsGroup.Get("/employee-hours/xlsx", reportHandler.EmployeeHoursXLSX)
	reportsGroup.Get("/employee-hours/pdf", reportHandler.EmployeeHoursPDF)

	// Sentinel zone: solo super_admin; sin gate de suscripción (el
	// super_admin no pertenece a ningún tenant).
	sentinel := api.Group("/sentinelzone", sessionGate, RequireWrite(ResourceSentinel))
	sentinelHandler := NewSentinelHandler(deps.CompanyUC, deps.LoginHistoryUC, deps.Log)
	sentinel.Post("/main-companies", sentinelHandler.Provision)
	sentinel.Get("/main-companies", sentinelHandler.List)
	sentinel.Get("/main-companies/:id", sentinelHandler.GetByID)
	sentinel.Put("/main-companies/:id", sentinelHandler.Update)
	sentinel.Delete("/main-companies/:id", sentinelHandler.Delete)
	sentinel.Put("/main-companies/:id/reset-admin-password", sentinelHandler.ResetAdminPassword)
	sentinel.Get("/login-history", sentinelHandler.LoginHistory)
}
