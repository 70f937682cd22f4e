// Package normalize ofrece normalización de texto para búsquedas
// insensibles a tildes y mayúsculas (ej. "Pérez" ≡ "perez").
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var removeDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Search normaliza un término de búsqueda: minúsculas, sin tildes y sin
// espacios sobrantes. Es la misma normalización que aplican las columnas
// *_search de la base de datos, para que ILIKE compare manzanas con manzanas.
func Search(s string) string {
	out, _, err := transform.String(removeDiacritics, s)
	if err != nil {
		// Si la transformación falla (input no UTF-8 válido), se usa el original.
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
