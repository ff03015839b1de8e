package repository

import (
	"time"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByInventoryAndProductID(inventoryID, productID string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); usar
	// dentro de una transacción para serializar los efectos de stock.
	GetForUpdate(inventoryID, productID string) (*entity.Product, error)
	ListByInventory(inventoryID string) ([]*entity.Product, error)
	ListBySupplier(supplierID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int64, updatedAt time.Time) error
	Delete(id string) error
}
