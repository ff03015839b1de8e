package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto dentro de un inventario (tenant).
// Stock se mantiene desde las transacciones del ledger; nunca queda negativo
// después de una mutación confirmada.
type Product struct {
	ID            string // clave primaria interna (uuid)
	InventoryID   string // identificador del tenant
	ProductID     string // identificador legible generado (PRD...), único
	Name          string
	Description   string
	OriginalPrice decimal.Decimal
	Price         decimal.Decimal
	Stock         int64
	Category      string
	SupplierID    string
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
