package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/tu-usuario/turnos-pro/docs"
	"github.com/tu-usuario/turnos-pro/internal/application/auth"
	"github.com/tu-usuario/turnos-pro/internal/application/reports"
	"github.com/tu-usuario/turnos-pro/internal/application/scheduling"
	"github.com/tu-usuario/turnos-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/turnos-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/turnos-pro/internal/infrastructure/postgres"
	infraxlsx "github.com/tu-usuario/turnos-pro/internal/infrastructure/xlsx"
	httpRouter "github.com/tu-usuario/turnos-pro/internal/interfaces/http"
	"github.com/tu-usuario/turnos-pro/pkg/config"
	"github.com/tu-usuario/turnos-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	companyRepo := postgres.NewMainCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	positionRepo := postgres.NewPositionRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	historyRepo := postgres.NewLoginHistoryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sesiones server-side en PostgreSQL (cookie opaca)
	sessionStore := postgres.NewSessionStore(cfg.DB, cfg.Session)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, companyRepo, historyRepo, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	positionUC := usecase.NewPositionUseCase(positionRepo, clienteRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo, txRunner)
	loginHistoryUC := usecase.NewLoginHistoryUseCase(historyRepo)
	shiftUC := scheduling.NewUseCase(shiftRepo, employeeRepo, positionRepo, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xlsxGenerator := infraxlsx.NewExcelizeReportGenerator()
	reportUC := reports.NewUseCase(reportRepo, pdfGenerator, xlsxGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDF/XLSX grandes tardan más
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Turnos Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		EmployeeUC:     employeeUC,
		ClienteUC:      clienteUC,
		PositionUC:     positionUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		LoginHistoryUC: loginHistoryUC,
		ShiftUC:        shiftUC,
		ReportUC:       reportUC,
		SessionStore:   sessionStore,
		Users:          userRepo,
		Companies:      companyRepo,
		RememberTTL:    cfg.Session.RememberTTL,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
