package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// ActivityHandler maneja las peticiones HTTP para el feed de actividad.
// Estas rutas devuelven la entidad cruda, sin la envoltura general.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Recent godoc
// @Summary      Últimas 10 entradas del feed de actividad
// @Tags         activities
// @Produce      json
// @Success      200  {array}  entity.Activity
// @Router       /api/activities [get]
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	activities, err := h.uc.Recent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if activities == nil {
		activities = []*entity.Activity{}
	}
	return c.JSON(activities)
}

// Record godoc
// @Summary      Registrar un evento en el feed de actividad
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "Evento"
// @Success      201  {object}  entity.Activity
// @Failure      400  {object}  fiber.Map
// @Router       /api/activities [post]
func (h *ActivityHandler) Record(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	activity, err := h.uc.Record(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid action or type"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}
