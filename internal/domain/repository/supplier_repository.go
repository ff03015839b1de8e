package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByInventoryAndSupplierID(inventoryID, supplierID string) (*entity.Supplier, error)
	GetBySupplierID(supplierID string) (*entity.Supplier, error)
	// GetByEmail busca por email ya normalizado a minúsculas.
	GetByEmail(email string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	ListByInventory(inventoryID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
}
