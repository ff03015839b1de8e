package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/identifier"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores con unicidad de
// email (case-insensitive, se persiste en minúsculas) y de nombre.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo, activityRepo: activityRepo}
}

// Create crea un proveedor. Email o nombre ya usados por otro registro son un
// error de validación (ErrEmailAlreadyExists / ErrNameAlreadyExists).
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	email := strings.ToLower(in.Email)
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	existing, err = uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNameAlreadyExists
	}
	status := in.Status
	if status == "" {
		status = entity.SupplierStatusActive
	}
	if !entity.ValidSupplierStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var address entity.Address
	if in.Address != nil {
		address = *in.Address
	}
	now := time.Now().UTC()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		InventoryID: in.InventoryID,
		SupplierID:  identifier.SupplierID(),
		Name:        in.Name,
		Email:       email,
		Phone:       in.Phone,
		Address:     address,
		Status:      status,
		ProductIDs:  []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// ListByInventory lista los proveedores de un inventario.
func (uc *SupplierUseCase) ListByInventory(inventoryID string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListByInventory(inventoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update aplica una actualización parcial. La unicidad de email y nombre se
// verifica contra registros distintos al actualizado. Devuelve (nil, nil) si
// el proveedor no existe en ese inventario.
func (uc *SupplierUseCase) Update(in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByInventoryAndSupplierID(in.InventoryID, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Email != nil {
		email := strings.ToLower(*in.Email)
		if email != supplier.Email {
			other, err := uc.repo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.SupplierID != supplier.SupplierID {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		supplier.Email = email
	}
	if in.Name != nil && *in.Name != supplier.Name {
		other, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.SupplierID != supplier.SupplierID {
			return nil, domain.ErrNameAlreadyExists
		}
		supplier.Name = *in.Name
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Status != nil {
		if !entity.ValidSupplierStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		supplier.Status = *in.Status
	}
	supplier.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	uc.recordActivity(entity.ActivitySupplierUpdated, supplier.Name, entity.ActivityTypeInfo)
	return toSupplierResponse(supplier), nil
}

// ProductsBySupplier devuelve el resumen del proveedor y todos los productos
// que lo referencian, sin filtrar por inventario. ErrNotFound si el proveedor
// no existe.
func (uc *SupplierUseCase) ProductsBySupplier(supplierID string) (*dto.SupplierSummary, []dto.ProductResponse, error) {
	supplier, err := uc.repo.GetBySupplierID(supplierID)
	if err != nil {
		return nil, nil, err
	}
	if supplier == nil {
		return nil, nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	summary := &dto.SupplierSummary{
		SupplierID: supplier.SupplierID,
		Name:       supplier.Name,
		Email:      supplier.Email,
	}
	return summary, items, nil
}

func (uc *SupplierUseCase) recordActivity(action, item, activityType string) {
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

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	products := s.ProductIDs
	if products == nil {
		products = []string{}
	}
	return &dto.SupplierResponse{
		SupplierID:  s.SupplierID,
		InventoryID: s.InventoryID,
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Status:      s.Status,
		Products:    products,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
