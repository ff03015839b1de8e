// Package identifier genera identificadores legibles para las entidades del
// inventario: prefijo de tipo + timestamp en milisegundos + sufijo aleatorio.
//
// La unicidad es probabilística, no garantizada: dos creaciones en el mismo
// milisegundo con el mismo sorteo colisionan. El índice único del store es el
// mecanismo real de enforcement; una violación se reporta como error de
// creación duplicada, nunca se reintenta en silencio.
package identifier

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// ProductID genera un identificador de producto: "PRD" + pista de categoría
// (3 primeras letras en mayúsculas, o "PRD" si no hay categoría) + epoch ms +
// aleatorio en [0,1000).
func ProductID(category string) string {
	return "PRD" + CategoryPrefix(category) + suffix()
}

// SupplierID genera un identificador de proveedor: "SUP" + epoch ms + aleatorio.
func SupplierID() string {
	return "SUP" + suffix()
}

// TransactionID genera un identificador de transacción: "TRN" + epoch ms + aleatorio.
func TransactionID() string {
	return "TRN" + suffix()
}

// InventoryID genera el identificador de tenant acuñado en el registro: "INV" + epoch ms.
func InventoryID() string {
	return "INV" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// CategoryPrefix devuelve la pista de categoría: las 3 primeras letras en
// mayúsculas, la categoría completa si es más corta, o "PRD" si está vacía.
func CategoryPrefix(category string) string {
	if category == "" {
		return "PRD"
	}
	if len(category) > 3 {
		category = category[:3]
	}
	return strings.ToUpper(category)
}

func suffix() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return ms + strconv.Itoa(rand.IntN(1000))
}
