package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// CreateTransactionRequest entrada para crear una entrada del ledger.
// TotalAmount se acepta en el body por compatibilidad pero se ignora siempre:
// el total es un valor derivado (quantity × unitPrice).
type CreateTransactionRequest struct {
	InventoryID     string                  `json:"InventoryId"`
	ProductID       string                  `json:"productId"`
	Type            string                  `json:"type"`
	Quantity        *int64                  `json:"quantity"`
	UnitPrice       *decimal.Decimal        `json:"unitPrice"`
	TotalAmount     *decimal.Decimal        `json:"totalAmount"`
	PaymentMethod   string                  `json:"paymentMethod"`
	PaymentStatus   string                  `json:"paymentStatus"`
	CustomerDetails *entity.CustomerDetails `json:"customerDetails"`
	Notes           string                  `json:"notes"`
	ReferenceNumber string                  `json:"referenceNumber"`
}

// UpdateTransactionStatusRequest entrada para el cambio de estado.
type UpdateTransactionStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// TransactionResponse salida de una entrada del ledger.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionId"`
	InventoryID     string                 `json:"InventoryId"`
	ProductID       string                 `json:"productId"`
	Type            string                 `json:"type"`
	Quantity        int64                  `json:"quantity"`
	UnitPrice       decimal.Decimal        `json:"unitPrice"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	Status          string                 `json:"status"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentStatus   string                 `json:"paymentStatus"`
	CustomerDetails entity.CustomerDetails `json:"customerDetails"`
	Notes           string                 `json:"notes,omitempty"`
	ReferenceNumber string                 `json:"referenceNumber,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// TransactionStatsResponse agregado por tipo de movimiento.
type TransactionStatsResponse struct {
	Type              string          `json:"type"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	TotalQuantity     int64           `json:"totalQuantity"`
}
