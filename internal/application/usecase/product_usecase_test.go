package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.ActivityRepository = (*fakeActivityRepo)(nil)
)

type fakeProductRepo struct{ products []*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByInventoryAndProductID(inventoryID, productID string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.InventoryID == inventoryID && p.ProductID == productID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(inventoryID, productID string) (*entity.Product, error) {
	return r.GetByInventoryAndProductID(inventoryID, productID)
}

func (r *fakeProductRepo) ListByInventory(inventoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.InventoryID == inventoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListBySupplier(supplierID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) UpdateStock(id string, stock int64, updatedAt time.Time) error {
	for _, p := range r.products {
		if p.ID == id {
			p.Stock = stock
			p.UpdatedAt = updatedAt
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeActivityRepo struct{ entries []*entity.Activity }

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	r.entries = append(r.entries, a)
	return nil
}

func (r *fakeActivityRepo) Recent(limit int) ([]*entity.Activity, error) {
	if len(r.entries) > limit {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}

func (r *fakeActivityRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, a := range r.entries {
		out = append(out, a.Action)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo, *fakeActivityRepo) {
	repo := &fakeProductRepo{}
	activityRepo := &fakeActivityRepo{}
	return usecase.NewProductUseCase(repo, activityRepo), repo, activityRepo
}

func decVal(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func int64Val(v int64) *int64 { return &v }

func createProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		InventoryID:   "INV1",
		Name:          "Laptop",
		Description:   "Portátil 14 pulgadas",
		OriginalPrice: decVal(900),
		Price:         decVal(1000),
		Stock:         int64Val(10),
		Category:      "electronics",
		SupplierID:    "SUP1000",
	}
}

func TestProductCreate_GeneraProductIDConPrefijoDeCategoria(t *testing.T) {
	uc, repo, activityRepo := newProductFixture()

	out, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.ProductID, "PRDELE"),
		"el productId lleva PRD + las tres primeras letras de la categoría")
	assert.Equal(t, int64(10), out.Stock)
	require.Len(t, repo.products, 1)
	assert.Equal(t, []string{entity.ActivityProductAdded}, activityRepo.actions())
}

func TestProductUpdate_SoloCamposPermitidos(t *testing.T) {
	uc, _, _ := newProductFixture()

	created, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	newName := "Laptop Pro"
	newPrice := decimal.NewFromInt(1200)
	out, err := uc.Update(dto.UpdateProductRequest{
		InventoryID: "INV1",
		ProductID:   created.ProductID,
		Name:        &newName,
		Price:       &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Laptop Pro", out.Name)
	assert.True(t, newPrice.Equal(out.Price))
	assert.Equal(t, created.Description, out.Description, "los campos no enviados no cambian")
	assert.Equal(t, created.Stock, out.Stock)
}

func TestProductUpdate_StockBajoRegistraAlerta(t *testing.T) {
	uc, _, activityRepo := newProductFixture()

	created, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	out, err := uc.Update(dto.UpdateProductRequest{
		InventoryID: "INV1",
		ProductID:   created.ProductID,
		Stock:       int64Val(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Stock)
	assert.Contains(t, activityRepo.actions(), entity.ActivityLowStockAlert)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc, _, _ := newProductFixture()

	out, err := uc.Update(dto.UpdateProductRequest{InventoryID: "INV1", ProductID: "PRDXXX1"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductGet_AisladoPorInventario(t *testing.T) {
	uc, _, _ := newProductFixture()

	created, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	out, err := uc.Get("INV2", created.ProductID)
	require.NoError(t, err)
	assert.Nil(t, out, "otro inventario no ve el producto")

	out, err = uc.Get("INV1", created.ProductID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ProductID, out.ProductID)
}

func TestProductDelete_RegistraActividad(t *testing.T) {
	uc, repo, activityRepo := newProductFixture()

	created, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete("INV1", created.ProductID))
	assert.Empty(t, repo.products)
	assert.Contains(t, activityRepo.actions(), entity.ActivityProductDeleted)

	err = uc.Delete("INV1", created.ProductID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
