package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/ledger"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// TransactionHandler maneja las peticiones HTTP para el ledger de
// transacciones.
type TransactionHandler struct {
	uc *ledger.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// ListByInventory godoc
// @Summary      Listar transacciones de un inventario
// @Tags         transactions
// @Produce      json
// @Param        inventoryId  path  string  true  "ID del inventario"
// @Success      200  {object}  dto.Envelope
// @Router       /api/transactions/inventory/{inventoryId} [get]
func (h *TransactionHandler) ListByInventory(c *fiber.Ctx) error {
	items, err := h.uc.ListByInventory(c.Params("inventoryId"))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	message := "Transactions retrieved successfully"
	if len(items) == 0 {
		message = "No transactions found"
	}
	return respondList(c, message, len(items), items)
}

// Get godoc
// @Summary      Obtener una transacción
// @Tags         transactions
// @Produce      json
// @Param        transactionId  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/transactions/{transactionId} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	txn, err := h.uc.GetByID(c.Params("transactionId"))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if txn == nil {
		return respondError(c, fiber.StatusNotFound, "Transaction not found")
	}
	return respondOK(c, fiber.StatusOK, "Transaction retrieved successfully", txn)
}

// Create godoc
// @Summary      Crear transacción (aplica el efecto de stock de inmediato)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos de la transacción"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var missing []string
	if in.InventoryID == "" {
		missing = append(missing, "InventoryId")
	}
	if in.ProductID == "" {
		missing = append(missing, "productId")
	}
	if in.Type == "" {
		missing = append(missing, "type")
	}
	if in.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if in.UnitPrice == nil {
		missing = append(missing, "unitPrice")
	}
	if len(missing) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
	}

	txn, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Product not found in the specified inventory")
		case errors.Is(err, domain.ErrInsufficientStock):
			return respondError(c, fiber.StatusBadRequest, "Insufficient stock available")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusCreated, "Transaction created successfully", txn)
}

// UpdateStatus godoc
// @Summary      Actualizar estado de una transacción
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transactionId  path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/transactions/{transactionId}/status [patch]
func (h *TransactionHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTransactionStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Status == "" {
		return respondError(c, fiber.StatusBadRequest, "Status is required")
	}

	txn, err := h.uc.UpdateStatus(c.Context(), c.Params("transactionId"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Transaction not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Transaction status updated successfully", txn)
}

// Stats godoc
// @Summary      Estadísticas de transacciones por tipo
// @Tags         transactions
// @Produce      json
// @Param        inventoryId  path  string  true  "ID del inventario"
// @Success      200  {object}  dto.Envelope
// @Router       /api/transactions/stats/{inventoryId} [get]
func (h *TransactionHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context(), c.Params("inventoryId"))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Transaction statistics retrieved successfully", stats)
}
