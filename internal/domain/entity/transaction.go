package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario de una transacción.
const (
	TransactionTypeSale       = "SALE"
	TransactionTypePurchase   = "PURCHASE"
	TransactionTypeReturn     = "RETURN"
	TransactionTypeAdjustment = "ADJUSTMENT"
	TransactionTypeTransfer   = "TRANSFER"
)

// Estados de una transacción.
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusCancelled = "CANCELLED"
	TransactionStatusRefunded  = "REFUNDED"
)

// Métodos de pago.
const (
	PaymentMethodCash         = "CASH"
	PaymentMethodCard         = "CARD"
	PaymentMethodUPI          = "UPI"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodCredit       = "CREDIT"
)

// Estados de pago.
const (
	PaymentStatusPending       = "PENDING"
	PaymentStatusPaid          = "PAID"
	PaymentStatusPartiallyPaid = "PARTIALLY_PAID"
	PaymentStatusRefunded      = "REFUNDED"
)

// CustomerDetails datos opcionales del cliente asociado a una transacción.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Transaction es una entrada del ledger de inventario: un movimiento sobre un
// producto con su efecto económico. TotalAmount siempre es Quantity × UnitPrice
// al momento del último guardado; nunca se acepta un valor del cliente.
type Transaction struct {
	ID              string // clave primaria interna (uuid)
	TransactionID   string // identificador legible generado (TRN...), único
	InventoryID     string
	ProductID       string
	Type            string // SALE, PURCHASE, RETURN, ADJUSTMENT, TRANSFER
	Quantity        int64  // siempre >= 1
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          string // PENDING, COMPLETED, CANCELLED, REFUNDED
	PaymentMethod   string
	PaymentStatus   string
	CustomerDetails CustomerDetails
	Notes           string
	ReferenceNumber string // referencia externa (factura, recibo, etc.)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidTransactionType indica si t es un tipo de movimiento declarado.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeSale, TransactionTypePurchase, TransactionTypeReturn,
		TransactionTypeAdjustment, TransactionTypeTransfer:
		return true
	}
	return false
}

// ValidTransactionStatus indica si s es un estado declarado.
func ValidTransactionStatus(s string) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted,
		TransactionStatusCancelled, TransactionStatusRefunded:
		return true
	}
	return false
}

// ValidPaymentMethod indica si m es un método de pago declarado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI,
		PaymentMethodBankTransfer, PaymentMethodCredit:
		return true
	}
	return false
}

// ValidPaymentStatus indica si s es un estado de pago declarado.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid,
		PaymentStatusPartiallyPaid, PaymentStatusRefunded:
		return true
	}
	return false
}
