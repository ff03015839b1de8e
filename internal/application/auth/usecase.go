package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/identifier"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// AuthUseCase registro y login de cuentas. El registro acuña el inventoryId
// del tenant; las contraseñas se guardan como hash bcrypt, nunca en claro.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Register crea la cuenta y acuña su inventoryId. Devuelve
// ErrEmailAlreadyExists si el email (case-insensitive) ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthData, error) {
	email := strings.ToLower(in.Email)
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		InventoryID:  identifier.InventoryID(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		// Carrera contra otro registro simultáneo del mismo email.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return &dto.AuthData{Email: user.Email, InventoryID: user.InventoryID}, nil
}

// Login verifica email y contraseña; en éxito devuelve el inventoryId del
// tenant. Email desconocido y contraseña incorrecta son indistinguibles
// (ErrUnauthorized en ambos casos).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthData, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.AuthData{Email: user.Email, InventoryID: user.InventoryID}, nil
}
