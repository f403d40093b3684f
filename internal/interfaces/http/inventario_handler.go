package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/application/inventario"
)

// InventarioHandler inventario de materiales, órdenes de compra e importación del maestro.
type InventarioHandler struct {
	api BackendFactory
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(api BackendFactory) *InventarioHandler {
	return &InventarioHandler{api: api}
}

// List godoc
// @Summary      Inventario con búsqueda
// @Tags         inventario
// @Produce      json
// @Param        id  path   string  true   "ID del proyecto"
// @Param        q   query  string  false  "Texto a buscar (sin distinguir tildes)"
// @Success      200  {object}  dto.InventarioResponse
// @Router       /api/proyectos/{id}/inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	uc := inventario.NewUseCase(h.api(c))
	out, err := uc.Buscar(c.UserContext(), c.Params("id"), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen de inventario
// @Tags         inventario
// @Produce      json
// @Param        proyecto_id  query  string  false  "Proyecto"
// @Success      200  {array}  entity.Material
// @Router       /api/inventario/resumen [get]
func (h *InventarioHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.api(c).InventarioResumen(c.UserContext(), c.Query("proyecto_id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CrearOrden godoc
// @Summary      Crear orden de compra
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del proyecto"
// @Param        body  body  dto.CrearOrdenCompraRequest  true  "Items"
// @Success      201  {object}  entity.OrdenCompra
// @Router       /api/proyectos/{id}/orden-compra [post]
func (h *InventarioHandler) CrearOrden(c *fiber.Ctx) error {
	var in dto.CrearOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).CrearOrdenCompra(c.UserContext(), c.Params("id"), in.Items)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Pendientes godoc
// @Summary      Órdenes pendientes de aprobación
// @Tags         compras
// @Produce      json
// @Success      200  {array}  entity.OrdenCompra
// @Router       /api/compras/pendientes [get]
func (h *InventarioHandler) Pendientes(c *fiber.Ctx) error {
	out, err := h.api(c).OrdenesPendientes(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarEstado godoc
// @Summary      Cambiar estado de una orden
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la orden"
// @Param        body  body  dto.ActualizarEstadoOrdenRequest  true  "estado"
// @Success      200  {object}  entity.OrdenCompra
// @Router       /api/compras/orden/{id}/estado [put]
func (h *InventarioHandler) ActualizarEstado(c *fiber.Ctx) error {
	var in dto.ActualizarEstadoOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).ActualizarEstadoOrden(c.UserContext(), c.Params("id"), in.Estado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ImportarMaestro godoc
// @Summary      Importar CSV maestro de insumos
// @Tags         inventario
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV (UTF-8 o Windows-1252)"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/importar/maestro [post]
func (h *InventarioHandler) ImportarMaestro(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file requerido"})
	}
	archivo, err := leerArchivo(fh)
	if err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).ImportarMaestro(c.UserContext(), archivo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
