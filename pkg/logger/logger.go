// Package logger arma el logger estructurado del servicio sobre zerolog:
// consola legible en desarrollo, JSON en producción, y el nombre del
// servicio estampado en cada entrada.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env     string // development/test -> consola legible; otro -> JSON
	Level   string // trace, debug, info, warn, error (info si no parsea)
	Service string // nombre del servicio; se omite si está vacío
}

// Logger wrapper sobre zerolog para inyección por constructor.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del servicio y lo instala también como logger global
// de zerolog para las librerías que lo usen.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" || cfg.Env == "test" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// WithTenant devuelve un sublogger con el tenant fijado, para que las trazas
// de operaciones scoped lleven siempre el main_company_id.
func (l *Logger) WithTenant(mainCompanyID string) *Logger {
	return &Logger{zl: l.zl.With().Str("main_company_id", mainCompanyID).Logger()}
}

// Trace, Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
