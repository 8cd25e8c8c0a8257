package normalizar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/normalizar"
)

func TestTexto_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "aji limo", normalizar.Texto("Ají Limo"))
	assert.Equal(t, "pescado bonito", normalizar.Texto("  Pescado   BONITO "))
	assert.Equal(t, "camaron", normalizar.Texto("CAMARÓN"))
}

func TestTexto_TextoYaNormalizado(t *testing.T) {
	assert.Equal(t, "limon", normalizar.Texto("limon"))
	assert.Equal(t, "", normalizar.Texto(""))
}
