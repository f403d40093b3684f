package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/ports"
)

// VentanaActividad usuarios con conexión en este lapso cuentan como activos.
const VentanaActividad = 5 * time.Minute

// DashboardHandler lecturas del directorio de Supabase (REST o Postgres directo).
type DashboardHandler struct {
	dir ports.Directorio
	now func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dir ports.Directorio) *DashboardHandler {
	return &DashboardHandler{dir: dir, now: time.Now}
}

// Activos godoc
// @Summary      Usuarios conectados en los últimos 5 minutos
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  entity.Usuario
// @Router       /api/dashboard/activos [get]
func (h *DashboardHandler) Activos(c *fiber.Ctx) error {
	out, err := h.dir.UsuariosActivos(c.UserContext(), h.now().Add(-VentanaActividad))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Proyectos godoc
// @Summary      Proyectos desde el directorio, más recientes primero
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  entity.Proyecto
// @Router       /api/dashboard/proyectos [get]
func (h *DashboardHandler) Proyectos(c *fiber.Ctx) error {
	out, err := h.dir.ListarProyectos(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
