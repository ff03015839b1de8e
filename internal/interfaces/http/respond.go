package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
)

// Zona horaria en la que se renderiza el campo timestamp de la envoltura.
// El frontend heredado espera el formato de visualización en-US, no ISO.
var displayLoc = mustLoadLocation("Asia/Kolkata")

// Formato equivalente a toLocaleString('en-US'): M/D/YYYY, h:mm:ss AM.
const displayLayout = "1/2/2006, 3:04:05 PM"

// SetDisplayTimezone cambia la zona horaria de los timestamps de respuesta.
// Se llama una vez al arranque con el valor de configuración.
func SetDisplayTimezone(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Str("tz", name).Err(err).Msg("zona horaria inválida, se mantiene la actual")
		return
	}
	displayLoc = loc
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func displayTimestamp() string {
	return time.Now().In(displayLoc).Format(displayLayout)
}

// respondOK envía la envoltura de éxito con datos.
func respondOK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: displayTimestamp(),
	})
}

// respondList envía la envoltura de éxito con count + data.
func respondList(c *fiber.Ctx, message string, count int, data any) error {
	return c.JSON(dto.Envelope{
		Success:   true,
		Message:   message,
		Count:     &count,
		Data:      data,
		Timestamp: displayTimestamp(),
	})
}

// respondError envía la envoltura de error.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{
		Success:   false,
		Message:   message,
		Timestamp: displayTimestamp(),
	})
}
