package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para el feed de
// actividad (append-only).
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	// Recent devuelve las entradas más recientes primero, hasta limit.
	Recent(limit int) ([]*entity.Activity, error)
}
