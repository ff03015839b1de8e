package entity

import "time"

// Acciones válidas del feed de actividad (conjunto cerrado).
const (
	ActivityProductAdded    = "Product Added"
	ActivityProductUpdated  = "Product Updated"
	ActivityProductDeleted  = "Product Deleted"
	ActivityLowStockAlert   = "Low Stock Alert"
	ActivitySaleRecorded    = "Sale Recorded"
	ActivitySupplierUpdated = "Supplier Updated"
)

// Severidades del feed de actividad.
const (
	ActivityTypeSuccess = "success"
	ActivityTypeWarning = "warning"
	ActivityTypeInfo    = "info"
)

// Activity es un evento del feed de actividad reciente (append-only).
type Activity struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Item      string    `json:"item"`
	Type      string    `json:"type"` // success, warning, info
	Timestamp time.Time `json:"timestamp"`
}

// ValidActivityAction indica si a pertenece al conjunto cerrado de acciones.
func ValidActivityAction(a string) bool {
	switch a {
	case ActivityProductAdded, ActivityProductUpdated, ActivityProductDeleted,
		ActivityLowStockAlert, ActivitySaleRecorded, ActivitySupplierUpdated:
		return true
	}
	return false
}

// ValidActivityType indica si t es una severidad declarada.
func ValidActivityType(t string) bool {
	return t == ActivityTypeSuccess || t == ActivityTypeWarning || t == ActivityTypeInfo
}
