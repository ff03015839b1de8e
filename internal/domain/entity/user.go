package entity

import "time"

// User representa una cuenta. Email se persiste en minúsculas; PasswordHash es
// un hash bcrypt (nunca la contraseña en claro). InventoryID es el tenant que
// se acuña al registrarse y es único por cuenta.
type User struct {
	ID           string // clave primaria interna (uuid)
	Email        string
	PasswordHash string
	InventoryID  string // identificador legible generado (INV...), único
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
