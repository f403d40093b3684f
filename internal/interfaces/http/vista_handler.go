package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/application/dto"
)

// Vista responde con el nombre de la vista; la compuerta de rutas ya decidió el acceso.
func Vista(uc *auth.AuthUseCase, nombre string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.VistaResponse{Vista: nombre, Sesion: uc.Sesion(GetStore(c))})
	}
}
