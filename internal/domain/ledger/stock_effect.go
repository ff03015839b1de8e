// Package ledger contiene las reglas de consistencia entre el stock de un
// producto y el historial de movimientos (servicio de dominio puro).
package ledger

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// StockEffect devuelve el cambio de stock que aplica una entrada del ledger en
// el momento de crearse (no al completarse): SALE descuenta, PURCHASE y RETURN
// suman, ADJUSTMENT y TRANSFER no tienen efecto automático.
func StockEffect(movementType string, quantity int64) int64 {
	switch movementType {
	case entity.TransactionTypeSale:
		return -quantity
	case entity.TransactionTypePurchase, entity.TransactionTypeReturn:
		return quantity
	}
	return 0
}

// ReversalEffect devuelve el cambio de stock que revierte el efecto aplicado en
// la creación. Solo se aplica en la transición COMPLETED -> CANCELLED.
func ReversalEffect(movementType string, quantity int64) int64 {
	return -StockEffect(movementType, quantity)
}
