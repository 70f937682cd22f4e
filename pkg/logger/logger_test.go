package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelExplicito(t *testing.T) {
	l := New(Config{Env: "test", Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

// Un nivel que no parsea no debe tirar el arranque: se cae a info.
func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	l := New(Config{Env: "test", Level: "verboso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestWithTenant_NoTocaElOriginal(t *testing.T) {
	base := New(Config{Env: "test", Level: "error"})
	scoped := base.WithTenant("c1")
	assert.NotSame(t, base, scoped)
	assert.Equal(t, base.Zerolog().GetLevel(), scoped.Zerolog().GetLevel())
}
