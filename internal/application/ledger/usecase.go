package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/identifier"
	domledger "github.com/tu-usuario/inventario-api/internal/domain/ledger"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// UseCase gestiona el ledger de transacciones y su consistencia con el stock.
// El efecto de stock se aplica al crear la entrada (no al completarse) y la
// reversión solo ocurre en la transición COMPLETED -> CANCELLED. Ambas
// escrituras (entrada + producto) van en una sola transacción de BD con
// bloqueo de fila del producto, de modo que dos SALE concurrentes no puedan
// pasar la verificación de stock con una lectura obsoleta.
type UseCase struct {
	txRunner     TxRunner
	txRepo       repository.TransactionRepository
	activityRepo repository.ActivityRepository
}

// NewUseCase construye el caso de uso. txRepo es el repositorio atado al pool
// para lecturas fuera de transacción.
func NewUseCase(txRunner TxRunner, txRepo repository.TransactionRepository, activityRepo repository.ActivityRepository) *UseCase {
	return &UseCase{txRunner: txRunner, txRepo: txRepo, activityRepo: activityRepo}
}

// Create valida y persiste una entrada del ledger y aplica su efecto de stock
// de inmediato: SALE descuenta, PURCHASE/RETURN suman, ADJUSTMENT/TRANSFER no
// tocan stock. TotalAmount siempre se calcula aquí; el valor del cliente se
// ignora. Una SALE con stock insuficiente devuelve ErrInsufficientStock sin
// cambios de estado.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity == nil || in.UnitPrice == nil {
		return nil, domain.ErrInvalidInput
	}
	quantity := *in.Quantity
	unitPrice := *in.UnitPrice
	if quantity < 1 || unitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCash
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}
	if !entity.ValidPaymentStatus(paymentStatus) {
		return nil, domain.ErrInvalidInput
	}
	var customer entity.CustomerDetails
	if in.CustomerDetails != nil {
		customer = *in.CustomerDetails
	}

	now := time.Now().UTC()
	txn := &entity.Transaction{
		ID:              uuid.New().String(),
		TransactionID:   identifier.TransactionID(),
		InventoryID:     in.InventoryID,
		ProductID:       in.ProductID,
		Type:            in.Type,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		TotalAmount:     unitPrice.Mul(decimal.NewFromInt(quantity)),
		Status:          entity.TransactionStatusPending,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   paymentStatus,
		CustomerDetails: customer,
		Notes:           in.Notes,
		ReferenceNumber: in.ReferenceNumber,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para serializar los efectos de stock.
		product, err := productRepo.GetForUpdate(in.InventoryID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if txn.Type == entity.TransactionTypeSale && product.Stock < quantity {
			return domain.ErrInsufficientStock
		}
		if err := txRepo.Create(txn); err != nil {
			return err
		}
		if delta := domledger.StockEffect(txn.Type, quantity); delta != 0 {
			if err := productRepo.UpdateStock(product.ID, product.Stock+delta, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if txn.Type == entity.TransactionTypeSale {
		uc.recordActivity(entity.ActivitySaleRecorded, txn.ProductID, entity.ActivityTypeInfo)
	}
	return toTransactionResponse(txn), nil
}

// UpdateStatus cambia el estado de una entrada. Solo la transición
// COMPLETED -> CANCELLED revierte el efecto de stock aplicado en la creación;
// cualquier otra transición deja el stock intacto (propiedad heredada del
// diseño original: PENDING -> CANCELLED tampoco revierte). Si el producto ya
// no existe, la reversión se omite con un warn en el log.
func (uc *UseCase) UpdateStatus(ctx context.Context, transactionID string, in dto.UpdateTransactionStatusRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentStatus != "" && !entity.ValidPaymentStatus(in.PaymentStatus) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	var updated *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		txn, err := txRepo.GetByTransactionID(transactionID)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrNotFound
		}
		if in.Status == entity.TransactionStatusCancelled && txn.Status == entity.TransactionStatusCompleted {
			product, err := productRepo.GetForUpdate(txn.InventoryID, txn.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				log.Warn().
					Str("transactionId", txn.TransactionID).
					Str("productId", txn.ProductID).
					Msg("producto inexistente: se omite la reversión de stock")
			} else if delta := domledger.ReversalEffect(txn.Type, txn.Quantity); delta != 0 {
				if err := productRepo.UpdateStock(product.ID, product.Stock+delta, now); err != nil {
					return err
				}
			}
		}
		txn.Status = in.Status
		if in.PaymentStatus != "" {
			txn.PaymentStatus = in.PaymentStatus
		}
		// El total es derivado: se recalcula en cada guardado.
		txn.TotalAmount = txn.UnitPrice.Mul(decimal.NewFromInt(txn.Quantity))
		txn.UpdatedAt = now
		updated = txn
		return txRepo.Update(txn)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(updated), nil
}

// ListByInventory lista las entradas de un inventario, más recientes primero.
func (uc *UseCase) ListByInventory(inventoryID string) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListByInventory(inventoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return items, nil
}

// GetByID obtiene una entrada por su transactionId. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByID(transactionID string) (*dto.TransactionResponse, error) {
	txn, err := uc.txRepo.GetByTransactionID(transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}
	return toTransactionResponse(txn), nil
}

// Stats agrupa las entradas del inventario por tipo de movimiento: cantidad de
// transacciones, monto total y cantidad total. Sin ventana temporal.
func (uc *UseCase) Stats(ctx context.Context, inventoryID string) ([]dto.TransactionStatsResponse, error) {
	stats, err := uc.txRepo.Stats(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionStatsResponse, 0, len(stats))
	for _, s := range stats {
		items = append(items, dto.TransactionStatsResponse{
			Type:              s.Type,
			TotalTransactions: s.TotalTransactions,
			TotalAmount:       s.TotalAmount,
			TotalQuantity:     s.TotalQuantity,
		})
	}
	return items, nil
}

func (uc *UseCase) recordActivity(action, item, activityType string) {
	activity := &entity.Activity{
		ID:        uuid.New().String(),
		Action:    action,
		Item:      item,
		Type:      activityType,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.activityRepo.Create(activity); err != nil {
		log.Warn().Err(err).Str("action", action).Str("item", item).Msg("no se pudo registrar la actividad")
	}
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		TransactionID:   t.TransactionID,
		InventoryID:     t.InventoryID,
		ProductID:       t.ProductID,
		Type:            t.Type,
		Quantity:        t.Quantity,
		UnitPrice:       t.UnitPrice,
		TotalAmount:     t.TotalAmount,
		Status:          t.Status,
		PaymentMethod:   t.PaymentMethod,
		PaymentStatus:   t.PaymentStatus,
		CustomerDetails: t.CustomerDetails,
		Notes:           t.Notes,
		ReferenceNumber: t.ReferenceNumber,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
