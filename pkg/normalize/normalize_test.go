package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "martinez", Search("Martínez"))
	assert.Equal(t, "nunez jose", Search("NÚÑEZ José"))
	assert.Equal(t, "logistica del sur", Search("Logística del Sur"))
}

func TestSearch_EsIdempotente(t *testing.T) {
	once := Search("Peñarol Ávila")
	assert.Equal(t, once, Search(once))
}

func TestSearch_CadenaVacia(t *testing.T) {
	assert.Equal(t, "", Search(""))
}

// Los términos ya normalizados y los crudos deben coincidir entre sí,
// que es lo que garantiza que la búsqueda funcione en ambas direcciones.
func TestSearch_CoincidenciaSimetrica(t *testing.T) {
	assert.Equal(t, Search("garcia"), Search("García"))
	assert.Equal(t, Search("GARCÍA"), Search("garcía"))
}
