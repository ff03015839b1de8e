package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/ledger"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventario-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar la app completa sin base de datos
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	products  []*entity.Product
	suppliers []*entity.Supplier
	txns      []*entity.Transaction
	activity  []*entity.Activity
	users     []*entity.User
}

type productRepo struct{ s *store }

func (r *productRepo) Create(p *entity.Product) error {
	r.s.products = append(r.s.products, p)
	return nil
}

func (r *productRepo) GetByInventoryAndProductID(inventoryID, productID string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.InventoryID == inventoryID && p.ProductID == productID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *productRepo) GetForUpdate(inventoryID, productID string) (*entity.Product, error) {
	return r.GetByInventoryAndProductID(inventoryID, productID)
}

func (r *productRepo) ListByInventory(inventoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.InventoryID == inventoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) ListBySupplier(supplierID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) Update(p *entity.Product) error { return nil }

func (r *productRepo) UpdateStock(id string, stock int64, updatedAt time.Time) error {
	for _, p := range r.s.products {
		if p.ID == id {
			p.Stock = stock
			p.UpdatedAt = updatedAt
		}
	}
	return nil
}

func (r *productRepo) Delete(id string) error {
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type supplierRepo struct{ s *store }

func (r *supplierRepo) Create(sp *entity.Supplier) error {
	r.s.suppliers = append(r.s.suppliers, sp)
	return nil
}

func (r *supplierRepo) GetByInventoryAndSupplierID(inventoryID, supplierID string) (*entity.Supplier, error) {
	for _, sp := range r.s.suppliers {
		if sp.InventoryID == inventoryID && sp.SupplierID == supplierID {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) GetBySupplierID(supplierID string) (*entity.Supplier, error) {
	for _, sp := range r.s.suppliers {
		if sp.SupplierID == supplierID {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) GetByEmail(email string) (*entity.Supplier, error) {
	for _, sp := range r.s.suppliers {
		if sp.Email == email {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, sp := range r.s.suppliers {
		if sp.Name == name {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) ListByInventory(inventoryID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sp := range r.s.suppliers {
		if sp.InventoryID == inventoryID {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (r *supplierRepo) Update(sp *entity.Supplier) error { return nil }

type txRepo struct{ s *store }

func (r *txRepo) Create(t *entity.Transaction) error {
	r.s.txns = append(r.s.txns, t)
	return nil
}

func (r *txRepo) GetByTransactionID(transactionID string) (*entity.Transaction, error) {
	for _, t := range r.s.txns {
		if t.TransactionID == transactionID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *txRepo) ListByInventory(inventoryID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.txns {
		if t.InventoryID == inventoryID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *txRepo) Update(t *entity.Transaction) error { return nil }

func (r *txRepo) Stats(ctx context.Context, inventoryID string) ([]repository.TransactionStats, error) {
	byType := map[string]*repository.TransactionStats{}
	var order []string
	for _, t := range r.s.txns {
		if t.InventoryID != inventoryID {
			continue
		}
		st, ok := byType[t.Type]
		if !ok {
			st = &repository.TransactionStats{Type: t.Type}
			byType[t.Type] = st
			order = append(order, t.Type)
		}
		st.TotalTransactions++
		st.TotalAmount = st.TotalAmount.Add(t.TotalAmount)
		st.TotalQuantity += t.Quantity
	}
	out := make([]repository.TransactionStats, 0, len(order))
	for _, typ := range order {
		out = append(out, *byType[typ])
	}
	return out, nil
}

type activityRepo struct{ s *store }

func (r *activityRepo) Create(a *entity.Activity) error {
	r.s.activity = append(r.s.activity, a)
	return nil
}

func (r *activityRepo) Recent(limit int) ([]*entity.Activity, error) {
	if len(r.s.activity) > limit {
		return r.s.activity[:limit], nil
	}
	return r.s.activity, nil
}

type userRepo struct{ s *store }

func (r *userRepo) Create(u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.users = append(r.s.users, u)
	return nil
}

func (r *userRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type txRunner struct{ s *store }

func (tr *txRunner) Run(ctx context.Context, fn func(txRepo repository.TransactionRepository, productRepo repository.ProductRepository) error) error {
	return fn(&txRepo{s: tr.s}, &productRepo{s: tr.s})
}

// buildTestApp monta la app Fiber con el router real y repositorios en memoria.
func buildTestApp(s *store) *fiber.App {
	products := &productRepo{s: s}
	activities := &activityRepo{s: s}
	txns := &txRepo{s: s}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(products, activities),
		SupplierUC: usecase.NewSupplierUseCase(&supplierRepo{s: s}, products, activities),
		LedgerUC:   ledger.NewUseCase(&txRunner{s: s}, txns, activities),
		ActivityUC: usecase.NewActivityUseCase(activities),
		AuthUC:     auth.NewAuthUseCase(&userRepo{s: s}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func seedProduct(s *store, stock int64) *entity.Product {
	p := &entity.Product{
		ID:          "p-1",
		InventoryID: "INV1",
		ProductID:   "PRDELE1000",
		Name:        "Laptop",
		Price:       decimal.NewFromInt(100),
		Stock:       stock,
		Category:    "electronics",
		SupplierID:  "SUP1000",
	}
	s.products = append(s.products, p)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsCreate_CamposFaltantes(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"InventoryId": "INV1",
		"name":        "Laptop",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields: description, original_price, price, stock, category, supplierId", body["message"])
}

func TestProductsCreate_Exitoso_EnvolturaYTimestamp(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"InventoryId":    "INV1",
		"name":           "Laptop",
		"description":    "Portátil",
		"original_price": 900,
		"price":          1000,
		"stock":          10,
		"category":       "electronics",
		"supplierId":     "SUP1000",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Product created successfully", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data["productId"], "PRDELE")

	// El timestamp se renderiza en formato de visualización, no ISO.
	ts, ok := body["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse("1/2/2006, 3:04:05 PM", ts)
	assert.NoError(t, err, "timestamp con formato M/D/YYYY, h:mm:ss AM")
}

func TestProductsGet_NoEncontrado(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/products/product?InventoryId=INV1&productId=PRDXXX1", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found in the specified inventory", body["message"])
}

func TestProductsList_IncluyeCountCero(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/products/inventory/INV1", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No products found in this inventory", body["message"])
	count, present := body["count"]
	require.True(t, present, "count debe serializarse aun cuando es 0")
	assert.Equal(t, float64(0), count)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transactions
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionsCreate_StockInsuficiente(t *testing.T) {
	s := &store{}
	seedProduct(s, 2)
	app := buildTestApp(s)

	resp, body := doJSON(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"InventoryId": "INV1",
		"productId":   "PRDELE1000",
		"type":        "SALE",
		"quantity":    5,
		"unitPrice":   100,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Insufficient stock available", body["message"])
	assert.Empty(t, s.txns)
	assert.Equal(t, int64(2), s.products[0].Stock)
}

func TestTransactionsCreate_AplicaEfectoDeStock(t *testing.T) {
	s := &store{}
	seedProduct(s, 10)
	app := buildTestApp(s)

	resp, body := doJSON(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"InventoryId": "INV1",
		"productId":   "PRDELE1000",
		"type":        "SALE",
		"quantity":    3,
		"unitPrice":   100,
		"totalAmount": 1, // se ignora
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, "300", data["totalAmount"])
	assert.Equal(t, int64(7), s.products[0].Stock)
}

// La ruta de stats no debe quedar capturada por el comodín /:transactionId.
func TestTransactionsStats_RutaNoCapturadaPorComodin(t *testing.T) {
	s := &store{}
	app := buildTestApp(s)

	resp, body := doJSON(t, app, http.MethodGet, "/api/transactions/stats/INV1", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Transaction statistics retrieved successfully", body["message"])
}

func TestTransactionsGet_NoEncontrada(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/transactions/TRN000", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Transaction not found", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroYLogin(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "User@Example.com",
		"password": "secret123",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User registered successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "user@example.com", data["email"])
	assert.Contains(t, data["inventoryId"], "INV")
	_, hasTimestamp := body["timestamp"]
	assert.False(t, hasTimestamp, "las respuestas de auth no llevan timestamp")

	// Registro duplicado (distinta capitalización) → 400.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "user@example.com",
		"password": "otra",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", body["message"])

	// Login correcto.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "user@example.com",
		"password": "secret123",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", body["message"])

	// Contraseña incorrecta → 401.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "user@example.com",
		"password": "incorrecta",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Activities (respuestas crudas, sin envoltura)
// ──────────────────────────────────────────────────────────────────────────────

func TestActivities_ListaCruda(t *testing.T) {
	app := buildTestApp(&store{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/activities", map[string]any{
		"action": "Product Added",
		"item":   "Laptop",
		"type":   "success",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	var activities []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&activities),
		"la lista se devuelve como arreglo crudo, sin envoltura")
	require.Len(t, activities, 1)
	assert.Equal(t, "Product Added", activities[0]["action"])
}

func TestActivities_AccionFueraDelConjunto(t *testing.T) {
	app := buildTestApp(&store{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/activities", map[string]any{
		"action": "Algo Raro",
		"item":   "Laptop",
		"type":   "success",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid action or type", body["message"])
}
