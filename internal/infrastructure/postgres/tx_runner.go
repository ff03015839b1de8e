package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/inventario-api/internal/application/ledger"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta una función de negocio dentro de una única transacción de
// base de datos. Los repositorios que recibe fn están ligados a esa tx, de
// modo que la escritura del ledger y la del stock confirman o se revierten
// juntas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor transaccional sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una tx, invoca fn con repositorios ligados a ella y confirma si fn
// no devolvió error. Cualquier error revierte la transacción completa.
func (t *TxRunner) Run(ctx context.Context, fn func(txRepo repository.TransactionRepository, productRepo repository.ProductRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewTransactionRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
