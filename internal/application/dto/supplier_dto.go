package dto

import (
	"time"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	InventoryID string          `json:"inventoryId"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     *entity.Address `json:"address"`
	Status      string          `json:"status"`
}

// UpdateSupplierRequest entrada para actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	InventoryID string          `json:"inventoryId"`
	SupplierID  string          `json:"supplierId"`
	Name        *string         `json:"name"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	Address     *entity.Address `json:"address"`
	Status      *string         `json:"status"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	SupplierID  string         `json:"supplierId"`
	InventoryID string         `json:"inventoryId"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     entity.Address `json:"address"`
	Status      string         `json:"status"`
	Products    []string       `json:"products"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// SupplierSummary resumen del proveedor incluido en la respuesta de
// "productos por proveedor".
type SupplierSummary struct {
	SupplierID string `json:"supplierId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
