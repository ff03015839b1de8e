package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// TransactionStats agregado por tipo de movimiento para un inventario.
type TransactionStats struct {
	Type              string
	TotalTransactions int64
	TotalAmount       decimal.Decimal
	TotalQuantity     int64
}

// TransactionRepository define el puerto de persistencia para las entradas del
// ledger. GetByTransactionID devuelve (nil, nil) cuando no existe.
type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	GetByTransactionID(transactionID string) (*entity.Transaction, error)
	// ListByInventory devuelve las entradas del tenant, más recientes primero.
	ListByInventory(inventoryID string) ([]*entity.Transaction, error)
	Update(transaction *entity.Transaction) error
	Stats(ctx context.Context, inventoryID string) ([]TransactionStats, error)
}
