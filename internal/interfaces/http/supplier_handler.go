package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP para Supplier.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var missing []string
	if in.InventoryID == "" {
		missing = append(missing, "inventoryId")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
	}

	supplier, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return respondError(c, fiber.StatusBadRequest, "Email already exists")
		case errors.Is(err, domain.ErrNameAlreadyExists):
			return respondError(c, fiber.StatusBadRequest, "Supplier name already exists")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusCreated, "Supplier created successfully", supplier)
}

// ListByInventory godoc
// @Summary      Listar proveedores de un inventario
// @Tags         suppliers
// @Produce      json
// @Param        inventoryId  path  string  true  "ID del inventario"
// @Success      200  {object}  dto.Envelope
// @Router       /api/suppliers/inventory/{inventoryId} [get]
func (h *SupplierHandler) ListByInventory(c *fiber.Ctx) error {
	inventoryID := c.Params("inventoryId")
	if inventoryID == "" {
		return respondError(c, fiber.StatusBadRequest, "inventoryId is required")
	}
	items, err := h.uc.ListByInventory(inventoryID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	message := "Suppliers retrieved successfully"
	if len(items) == 0 {
		message = "No suppliers found"
	}
	return respondList(c, message, len(items), items)
}

// ProductsBySupplier godoc
// @Summary      Listar productos de un proveedor
// @Tags         suppliers
// @Produce      json
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/suppliers/products/{supplierId} [get]
func (h *SupplierHandler) ProductsBySupplier(c *fiber.Ctx) error {
	supplierID := c.Params("supplierId")
	if supplierID == "" {
		return respondError(c, fiber.StatusBadRequest, "SupplierId is required")
	}
	summary, products, err := h.uc.ProductsBySupplier(supplierID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Supplier not found")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	message := "Products retrieved successfully"
	if len(products) == 0 {
		message = "No products found for this supplier"
	}
	count := len(products)
	return c.JSON(dto.Envelope{
		Success:   true,
		Message:   message,
		Supplier:  summary,
		Count:     &count,
		Data:      products,
		Timestamp: displayTimestamp(),
	})
}

// Update godoc
// @Summary      Actualizar proveedor (parcial)
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/suppliers/update [patch]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.InventoryID == "" || in.SupplierID == "" {
		return respondError(c, fiber.StatusBadRequest, "Both inventoryId and supplierId are required for update")
	}

	supplier, err := h.uc.Update(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return respondError(c, fiber.StatusBadRequest, "Email already exists")
		case errors.Is(err, domain.ErrNameAlreadyExists):
			return respondError(c, fiber.StatusBadRequest, "Supplier name already exists")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if supplier == nil {
		return respondError(c, fiber.StatusNotFound, "Supplier not found in the specified inventory")
	}
	return respondOK(c, fiber.StatusOK, "Supplier updated successfully", supplier)
}
