package ledger

import (
	"context"

	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la entrada del ledger y el
// ajuste de stock del producto se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
