package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListByInventory godoc
// @Summary      Listar productos de un inventario
// @Tags         products
// @Produce      json
// @Param        inventoryId  path  string  true  "ID del inventario"
// @Success      200  {object}  dto.Envelope
// @Router       /api/products/inventory/{inventoryId} [get]
func (h *ProductHandler) ListByInventory(c *fiber.Ctx) error {
	inventoryID := c.Params("inventoryId")
	if inventoryID == "" {
		return respondError(c, fiber.StatusBadRequest, "InventoryId is required")
	}
	items, err := h.uc.ListByInventory(inventoryID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	message := "Products retrieved successfully"
	if len(items) == 0 {
		message = "No products found in this inventory"
	}
	return respondList(c, message, len(items), items)
}

// Get godoc
// @Summary      Obtener un producto por InventoryId y productId
// @Tags         products
// @Produce      json
// @Param        InventoryId  query  string  true  "ID del inventario"
// @Param        productId    query  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/product [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	inventoryID := c.Query("InventoryId")
	productID := c.Query("productId")
	if inventoryID == "" || productID == "" {
		return respondError(c, fiber.StatusBadRequest, "Both InventoryId and productId are required")
	}
	product, err := h.uc.Get(inventoryID, productID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return respondError(c, fiber.StatusNotFound, "Product not found in the specified inventory")
	}
	return respondOK(c, fiber.StatusOK, "Product retrieved successfully", product)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// productId no se pide: se genera a partir de la categoría.
	var missing []string
	if in.InventoryID == "" {
		missing = append(missing, "InventoryId")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.OriginalPrice == nil {
		missing = append(missing, "original_price")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Stock == nil {
		missing = append(missing, "stock")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.SupplierID == "" {
		missing = append(missing, "supplierId")
	}
	if len(missing) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if in.OriginalPrice.IsNegative() || in.Price.IsNegative() || *in.Stock < 0 {
		return respondError(c, fiber.StatusBadRequest, "Original price, price, and stock must be non-negative numbers")
	}

	product, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusCreated, "Product created successfully", product)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/update [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.InventoryID == "" || in.ProductID == "" {
		return respondError(c, fiber.StatusBadRequest, "Both InventoryId and productId are required for update")
	}
	if in.OriginalPrice != nil && in.OriginalPrice.IsNegative() {
		return respondError(c, fiber.StatusBadRequest, "Original price must be a non-negative number")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return respondError(c, fiber.StatusBadRequest, "Price must be a non-negative number")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return respondError(c, fiber.StatusBadRequest, "Stock must be a non-negative number")
	}

	product, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return respondError(c, fiber.StatusNotFound, "Product not found in the specified inventory")
	}
	return respondOK(c, fiber.StatusOK, "Product updated successfully", product)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteProductRequest  true  "Identificadores del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/delete [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.InventoryID == "" || in.ProductID == "" {
		return respondError(c, fiber.StatusBadRequest, "Both InventoryId and productId are required for deletion")
	}
	if err := h.uc.Delete(in.InventoryID, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Product not found in the specified inventory")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Product deleted successfully", nil)
}
