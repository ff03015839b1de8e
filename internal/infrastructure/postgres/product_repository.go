package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, inventory_id, product_id, name, description, original_price, price, stock, category, supplier_id, image_url, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Una colisión de product_id surge como ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.InventoryID, product.ProductID, product.Name, product.Description,
		product.OriginalPrice, product.Price, product.Stock, product.Category,
		product.SupplierID, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByInventoryAndProductID obtiene un producto por inventario y productId.
func (r *ProductRepo) GetByInventoryAndProductID(inventoryID, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE inventory_id = $1 AND product_id = $2`
	return r.scanOne(query, inventoryID, productID)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(inventoryID, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE inventory_id = $1 AND product_id = $2 FOR UPDATE`
	return r.scanOne(query, inventoryID, productID)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.InventoryID, &p.ProductID, &p.Name, &p.Description,
		&p.OriginalPrice, &p.Price, &p.Stock, &p.Category,
		&p.SupplierID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByInventory lista los productos de un inventario.
func (r *ProductRepo) ListByInventory(inventoryID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE inventory_id = $1 ORDER BY created_at DESC`
	return r.list(query, inventoryID)
}

// ListBySupplier lista todos los productos que referencian un proveedor, sin filtrar por inventario.
func (r *ProductRepo) ListBySupplier(supplierID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY created_at DESC`
	return r.list(query, supplierID)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.InventoryID, &p.ProductID, &p.Name, &p.Description,
			&p.OriginalPrice, &p.Price, &p.Stock, &p.Category,
			&p.SupplierID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, original_price = $4, price = $5, stock = $6,
		    category = $7, supplier_id = $8, image_url = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.OriginalPrice, product.Price,
		product.Stock, product.Category, product.SupplierID, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock (usado por el ledger). El CHECK
// stock >= 0 de la tabla convierte un saldo negativo en ErrInvalidInput.
func (r *ProductRepo) UpdateStock(id string, stock int64, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1`,
		id, stock, updatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por su clave primaria interna.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
