package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los campos numéricos son
// punteros para distinguir "ausente" de cero en la validación de presencia.
type CreateProductRequest struct {
	InventoryID   string           `json:"InventoryId"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int64           `json:"stock"`
	Category      string           `json:"category"`
	SupplierID    string           `json:"supplierId"`
	ImageURL      string           `json:"imageUrl"`
}

// UpdateProductRequest entrada para actualización parcial. Solo la lista
// permitida de campos puede mutarse; InventoryId y productId localizan el
// registro.
type UpdateProductRequest struct {
	InventoryID   string           `json:"InventoryId"`
	ProductID     string           `json:"productId"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int64           `json:"stock"`
	Category      *string          `json:"category"`
	SupplierID    *string          `json:"supplierId"`
	ImageURL      *string          `json:"imageUrl"`
}

// DeleteProductRequest entrada para eliminar un producto.
type DeleteProductRequest struct {
	InventoryID string `json:"InventoryId"`
	ProductID   string `json:"productId"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID     string          `json:"productId"`
	InventoryID   string          `json:"inventoryId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Price         decimal.Decimal `json:"price"`
	Stock         int64           `json:"stock"`
	Category      string          `json:"category"`
	SupplierID    string          `json:"supplierId"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
