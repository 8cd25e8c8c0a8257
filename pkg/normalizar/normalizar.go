// Package normalizar normaliza texto para búsquedas insensibles a tildes
// (ej. "Ají Limo" y "aji limo" deben coincidir en el buscador de productos).
package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Texto devuelve el texto en minúsculas, sin tildes ni diacríticos y con
// espacios colapsados. Si la transformación falla, devuelve el original en minúsculas.
func Texto(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
