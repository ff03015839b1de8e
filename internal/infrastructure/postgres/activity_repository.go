package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de persistencia del feed de actividad.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create agrega un evento al feed.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO activities (id, action, item, type, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		activity.ID, activity.Action, activity.Item, activity.Type, activity.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// Recent devuelve los eventos más recientes primero, hasta limit.
func (r *ActivityRepo) Recent(limit int) ([]*entity.Activity, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, action, item, type, timestamp FROM activities ORDER BY timestamp DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Action, &a.Item, &a.Type, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
