package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
)

// AdminHandler aprobación de cuentas, roles y activación (solo rol admin).
type AdminHandler struct {
	api BackendFactory
}

// NewAdminHandler construye el handler.
func NewAdminHandler(api BackendFactory) *AdminHandler {
	return &AdminHandler{api: api}
}

// Pendientes godoc
// @Summary      Usuarios pendientes de aprobación
// @Tags         admin
// @Produce      json
// @Success      200  {array}  entity.Usuario
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/pendientes [get]
func (h *AdminHandler) Pendientes(c *fiber.Ctx) error {
	out, err := h.api(c).UsuariosPendientes(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar usuario
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/admin/usuarios/{id}/aprobar [post]
func (h *AdminHandler) Aprobar(c *fiber.Ctx) error {
	out, err := h.api(c).AprobarUsuario(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// AsignarRol godoc
// @Summary      Asignar rol
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.AsignarRolRequest  true  "rol"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/admin/usuarios/{id}/rol [post]
func (h *AdminHandler) AsignarRol(c *fiber.Ctx) error {
	var in dto.AsignarRolRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).AsignarRol(c.UserContext(), c.Params("id"), in.Rol)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarActivo godoc
// @Summary      Activar o desactivar usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del usuario"
// @Param        body  body  dto.ActualizarActivoRequest  true  "is_active"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/admin/usuarios/{id}/activo [post]
func (h *AdminHandler) ActualizarActivo(c *fiber.Ctx) error {
	var in dto.ActualizarActivoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).ActualizarActivoUsuario(c.UserContext(), c.Params("id"), in.Activo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
