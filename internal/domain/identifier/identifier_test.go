package identifier_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/domain/identifier"
)

// Formato esperado: prefijo + epoch ms (13 dígitos en esta era) + aleatorio 1-3 dígitos.
var numericTail = regexp.MustCompile(`^\d{14,16}$`)

func TestCategoryPrefix(t *testing.T) {
	cases := []struct {
		name     string
		category string
		want     string
	}{
		{"categoría normal", "Electronics", "ELE"},
		{"minúsculas se elevan", "snacks", "SNA"},
		{"más corta que 3 se conserva", "TV", "TV"},
		{"vacía usa el fallback", "", "PRD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, identifier.CategoryPrefix(tc.category))
		})
	}
}

func TestProductID_Formato(t *testing.T) {
	id := identifier.ProductID("Electronics")
	require.True(t, strings.HasPrefix(id, "PRDELE"), "debe llevar prefijo PRD + categoría: %s", id)
	assert.Regexp(t, numericTail, strings.TrimPrefix(id, "PRDELE"))
}

func TestProductID_SinCategoria(t *testing.T) {
	id := identifier.ProductID("")
	assert.True(t, strings.HasPrefix(id, "PRDPRD"), "sin categoría el prefijo es PRDPRD: %s", id)
}

func TestSupplierID_Formato(t *testing.T) {
	id := identifier.SupplierID()
	require.True(t, strings.HasPrefix(id, "SUP"))
	assert.Regexp(t, numericTail, strings.TrimPrefix(id, "SUP"))
}

func TestTransactionID_Formato(t *testing.T) {
	id := identifier.TransactionID()
	require.True(t, strings.HasPrefix(id, "TRN"))
	assert.Regexp(t, numericTail, strings.TrimPrefix(id, "TRN"))
}

// InventoryID no lleva sufijo aleatorio: es INV + epoch ms.
func TestInventoryID_EsTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	id := identifier.InventoryID()
	after := time.Now().UnixMilli()

	require.True(t, strings.HasPrefix(id, "INV"))
	ms, err := strconv.ParseInt(strings.TrimPrefix(id, "INV"), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
}
