package dto

// RegisterRequest entrada para registro: acuña un inventoryId nuevo.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData datos devueltos por register/login.
type AuthData struct {
	Email       string `json:"email"`
	InventoryID string `json:"inventoryId"`
}

// AuthResponse forma propia de las respuestas de auth (distinta del Envelope
// general: sin timestamp ni count).
type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *AuthData `json:"data,omitempty"`
}
