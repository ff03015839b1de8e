package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, inventory_id, supplier_id, name, email, phone, street, city, state, country, zip_code, status, product_ids, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL
// (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor. Email, nombre o supplier_id duplicados
// surgen como ErrDuplicate (índices únicos).
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.InventoryID, supplier.SupplierID, supplier.Name, supplier.Email,
		supplier.Phone, supplier.Address.Street, supplier.Address.City, supplier.Address.State,
		supplier.Address.Country, supplier.Address.ZipCode, supplier.Status, supplier.ProductIDs,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByInventoryAndSupplierID obtiene un proveedor por inventario y supplierId.
func (r *SupplierRepo) GetByInventoryAndSupplierID(inventoryID, supplierID string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE inventory_id = $1 AND supplier_id = $2`
	return r.scanOne(query, inventoryID, supplierID)
}

// GetBySupplierID obtiene un proveedor por supplierId, sin filtrar por inventario.
func (r *SupplierRepo) GetBySupplierID(supplierID string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1`
	return r.scanOne(query, supplierID)
}

// GetByEmail busca por email ya normalizado a minúsculas.
func (r *SupplierRepo) GetByEmail(email string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE email = $1`
	return r.scanOne(query, email)
}

// GetByName busca por nombre exacto.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE name = $1`
	return r.scanOne(query, name)
}

func (r *SupplierRepo) scanOne(query string, args ...any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.InventoryID, &s.SupplierID, &s.Name, &s.Email, &s.Phone,
		&s.Address.Street, &s.Address.City, &s.Address.State, &s.Address.Country,
		&s.Address.ZipCode, &s.Status, &s.ProductIDs, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByInventory lista los proveedores de un inventario.
func (r *SupplierRepo) ListByInventory(inventoryID string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE inventory_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.InventoryID, &s.SupplierID, &s.Name, &s.Email, &s.Phone,
			&s.Address.Street, &s.Address.City, &s.Address.State, &s.Address.Country,
			&s.Address.ZipCode, &s.Status, &s.ProductIDs, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, street = $5, city = $6, state = $7,
		    country = $8, zip_code = $9, status = $10, product_ids = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Email, supplier.Phone,
		supplier.Address.Street, supplier.Address.City, supplier.Address.State,
		supplier.Address.Country, supplier.Address.ZipCode, supplier.Status,
		supplier.ProductIDs, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}
