package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/ledger"
)

func TestStockEffect(t *testing.T) {
	cases := []struct {
		movementType string
		quantity     int64
		want         int64
	}{
		{entity.TransactionTypeSale, 3, -3},
		{entity.TransactionTypePurchase, 5, 5},
		{entity.TransactionTypeReturn, 2, 2},
		{entity.TransactionTypeAdjustment, 7, 0},
		{entity.TransactionTypeTransfer, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.movementType, func(t *testing.T) {
			assert.Equal(t, tc.want, ledger.StockEffect(tc.movementType, tc.quantity))
		})
	}
}

// La reversión es exactamente la negación del efecto de creación: cancelar una
// venta COMPLETED devuelve el stock; cancelar una compra o devolución lo resta.
func TestReversalEffect_EsNegacionDelEfecto(t *testing.T) {
	for _, mt := range []string{
		entity.TransactionTypeSale,
		entity.TransactionTypePurchase,
		entity.TransactionTypeReturn,
		entity.TransactionTypeAdjustment,
		entity.TransactionTypeTransfer,
	} {
		assert.Equal(t, -ledger.StockEffect(mt, 9), ledger.ReversalEffect(mt, 9), mt)
	}
}
