package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/pkg/config"
)

// LocalStore key en c.Locals del SessionStore de la petición.
const LocalStore = "session_store"

// Rutas a las que redirige la compuerta.
const (
	RutaLogin = "/login"
	RutaHome  = "/"
)

// SessionMiddleware abre el CookieStore de la petición y lo deja en c.Locals.
func SessionMiddleware(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalStore, NewCookieStore(c, cfg))
		return c.Next()
	}
}

// GetStore devuelve el SessionStore de la petición (después de SessionMiddleware).
func GetStore(c *fiber.Ctx) ports.SessionStore {
	s, ok := c.Locals(LocalStore).(*CookieStore)
	if !ok || s == nil {
		return nil
	}
	return s
}

// GetRole rol del token de sesión, sin verificar firma. Vacío si no hay.
func GetRole(c *fiber.Ctx) string {
	rol, _ := auth.CurrentRole(GetStore(c))
	return rol
}

// RequireSession exige un token en la sesión.
func RequireSession() fiber.Handler {
	return RequireRole("")
}

// RequireRole evalúa auth.Authorize en cada petición. Las vistas redirigen a /login
// o a /; las rutas /api responden 401 o 403 en JSON.
func RequireRole(rol string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch auth.Authorize(GetStore(c), rol) {
		case auth.Allowed:
			return c.Next()
		case auth.RedirectToLogin:
			if esAPI(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SIN_SESION", Message: "inicie sesión"})
			}
			return c.Redirect(RutaLogin, fiber.StatusFound)
		default:
			if esAPI(c) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol " + rol + " requerido"})
			}
			return c.Redirect(RutaHome, fiber.StatusFound)
		}
	}
}

func esAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
