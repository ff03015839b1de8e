package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// GetByEmail busca por email ya normalizado a minúsculas; devuelve
	// (nil, nil) si no existe.
	GetByEmail(email string) (*entity.User, error)
}
