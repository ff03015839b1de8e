package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, transaction_id, inventory_id, product_id, type, quantity, unit_price, total_amount, status, payment_method, payment_status, customer_name, customer_email, customer_phone, customer_address, notes, reference_number, created_at, updated_at`

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para el ledger. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva entrada del ledger. Una colisión de transaction_id
// surge como ErrDuplicate.
func (r *TransactionRepo) Create(transaction *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.TransactionID, transaction.InventoryID, transaction.ProductID,
		transaction.Type, transaction.Quantity, transaction.UnitPrice, transaction.TotalAmount,
		transaction.Status, transaction.PaymentMethod, transaction.PaymentStatus,
		transaction.CustomerDetails.Name, transaction.CustomerDetails.Email,
		transaction.CustomerDetails.Phone, transaction.CustomerDetails.Address,
		transaction.Notes, transaction.ReferenceNumber, transaction.CreatedAt, transaction.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByTransactionID obtiene una entrada por su identificador legible.
func (r *TransactionRepo) GetByTransactionID(transactionID string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, transactionID).Scan(
		&t.ID, &t.TransactionID, &t.InventoryID, &t.ProductID, &t.Type,
		&t.Quantity, &t.UnitPrice, &t.TotalAmount, &t.Status, &t.PaymentMethod,
		&t.PaymentStatus, &t.CustomerDetails.Name, &t.CustomerDetails.Email,
		&t.CustomerDetails.Phone, &t.CustomerDetails.Address,
		&t.Notes, &t.ReferenceNumber, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// ListByInventory lista las entradas del ledger de un inventario, más
// recientes primero.
func (r *TransactionRepo) ListByInventory(inventoryID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE inventory_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.TransactionID, &t.InventoryID, &t.ProductID, &t.Type,
			&t.Quantity, &t.UnitPrice, &t.TotalAmount, &t.Status, &t.PaymentMethod,
			&t.PaymentStatus, &t.CustomerDetails.Name, &t.CustomerDetails.Email,
			&t.CustomerDetails.Phone, &t.CustomerDetails.Address,
			&t.Notes, &t.ReferenceNumber, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de una entrada (estado, pago, total).
func (r *TransactionRepo) Update(transaction *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET status = $2, payment_status = $3, total_amount = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.Status, transaction.PaymentStatus,
		transaction.TotalAmount, transaction.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Stats agrega las transacciones de un inventario por tipo de movimiento.
func (r *TransactionRepo) Stats(ctx context.Context, inventoryID string) ([]repository.TransactionStats, error) {
	query := `
		SELECT type,
		       COUNT(*)                      AS total_transactions,
		       COALESCE(SUM(total_amount), 0) AS total_amount,
		       COALESCE(SUM(quantity), 0)     AS total_quantity
		FROM transactions
		WHERE inventory_id = $1
		GROUP BY type
		ORDER BY type`
	rows, err := r.q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("transaction stats: %w", err)
	}
	defer rows.Close()
	var stats []repository.TransactionStats
	for rows.Next() {
		var s repository.TransactionStats
		if err := rows.Scan(&s.Type, &s.TotalTransactions, &s.TotalAmount, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
