package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// AuthHandler maneja registro y login. Las respuestas de auth tienen su
// propia forma {success, message, data}, sin timestamp.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cuenta (acuña un inventoryId nuevo)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credenciales"
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.AuthResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResponse{Success: false, Message: "Invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResponse{Success: false, Message: "Please provide both email and password"})
	}
	data, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResponse{Success: false, Message: "User already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AuthResponse{Success: false, Message: "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    data,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  dto.AuthResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResponse{Success: false, Message: "Invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResponse{Success: false, Message: "Please provide both email and password"})
	}
	data, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthResponse{Success: false, Message: "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AuthResponse{Success: false, Message: "Internal server error"})
	}
	return c.JSON(dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Data:    data,
	})
}
