package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/identifier"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Umbral a partir del cual un update de stock registra Low Stock Alert.
const lowStockThreshold = 5

// ProductUseCase casos de uso CRUD para productos, acotados por inventoryId.
// Stock solo se muta aquí de forma directa (campo editable); los efectos
// derivados de movimientos los aplica el ledger.
type ProductUseCase struct {
	repo         repository.ProductRepository
	activityRepo repository.ActivityRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, activityRepo repository.ActivityRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, activityRepo: activityRepo}
}

// ListByInventory lista los productos de un inventario.
func (uc *ProductUseCase) ListByInventory(inventoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByInventory(inventoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Get obtiene un producto por inventario y productId. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Get(inventoryID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByInventoryAndProductID(inventoryID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un producto con un productId generado a partir de la categoría.
// La unicidad del productId la garantiza el índice del store: una colisión
// surge como domain.ErrDuplicate, no se reintenta.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now().UTC()
	product := &entity.Product{
		ID:            uuid.New().String(),
		InventoryID:   in.InventoryID,
		ProductID:     identifier.ProductID(in.Category),
		Name:          in.Name,
		Description:   in.Description,
		OriginalPrice: *in.OriginalPrice,
		Price:         *in.Price,
		Stock:         *in.Stock,
		Category:      in.Category,
		SupplierID:    in.SupplierID,
		ImageURL:      in.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.recordActivity(entity.ActivityProductAdded, product.Name, entity.ActivityTypeSuccess)
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial sobre la lista permitida de campos.
// Devuelve (nil, nil) si el producto no existe en ese inventario.
func (uc *ProductUseCase) Update(in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByInventoryAndProductID(in.InventoryID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = *in.OriginalPrice
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.recordActivity(entity.ActivityProductUpdated, product.Name, entity.ActivityTypeInfo)
	if in.Stock != nil && *in.Stock <= lowStockThreshold {
		uc.recordActivity(entity.ActivityLowStockAlert, product.Name, entity.ActivityTypeWarning)
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. No hay limpieza en cascada de transacciones ni
// de referencias en proveedores.
func (uc *ProductUseCase) Delete(inventoryID, productID string) error {
	product, err := uc.repo.GetByInventoryAndProductID(inventoryID, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(product.ID); err != nil {
		return err
	}
	uc.recordActivity(entity.ActivityProductDeleted, product.Name, entity.ActivityTypeWarning)
	return nil
}

// recordActivity escribe en el feed como efecto secundario best-effort: un
// fallo se registra en el log y no afecta la operación principal.
func (uc *ProductUseCase) recordActivity(action, item, activityType string) {
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

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ProductID:     p.ProductID,
		InventoryID:   p.InventoryID,
		Name:          p.Name,
		Description:   p.Description,
		OriginalPrice: p.OriginalPrice,
		Price:         p.Price,
		Stock:         p.Stock,
		Category:      p.Category,
		SupplierID:    p.SupplierID,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
