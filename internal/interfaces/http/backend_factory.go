package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/backend"
)

// BackendFactory fachada del backend ligada a la sesión del navegador que hace la petición.
type BackendFactory func(c *fiber.Ctx) *backend.Service

// NewBackendFactory comparte el transporte de api y cambia solo el SessionStore.
func NewBackendFactory(api *apiclient.Client, log zerolog.Logger, opts ...backend.Option) BackendFactory {
	return func(c *fiber.Ctx) *backend.Service {
		return backend.New(api.WithStore(GetStore(c)), log, opts...)
	}
}
