package entity

import "time"

// Estados válidos para Supplier.
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// Address dirección estructurada de un proveedor.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// Supplier representa un proveedor. Name es único global; Email es único y se
// persiste normalizado a minúsculas. ProductIDs es una referencia laxa a los
// productos del proveedor (no se garantiza integridad referencial).
type Supplier struct {
	ID          string // clave primaria interna (uuid)
	InventoryID string
	SupplierID  string // identificador legible generado (SUP...), único
	Name        string
	Email       string
	Phone       string
	Address     Address
	Status      string // active, inactive
	ProductIDs  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidSupplierStatus indica si s es un estado declarado.
func ValidSupplierStatus(s string) bool {
	return s == SupplierStatusActive || s == SupplierStatusInactive
}
