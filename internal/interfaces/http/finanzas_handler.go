package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
)

// FinanzasHandler finanzas personales del dueño y cobros de proyectos.
type FinanzasHandler struct {
	api BackendFactory
}

// NewFinanzasHandler construye el handler.
func NewFinanzasHandler(api BackendFactory) *FinanzasHandler {
	return &FinanzasHandler{api: api}
}

// Resumen godoc
// @Summary      Resumen de finanzas personales
// @Tags         finanzas
// @Produce      json
// @Success      200  {object}  entity.ResumenFinanzasPersonales
// @Router       /api/finanzas/personales [get]
func (h *FinanzasHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.api(c).ResumenFinanzasPersonales(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// RegistrarGasto godoc
// @Summary      Registrar gasto personal
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarGastoRequest  true  "descripcion, monto, categoria"
// @Success      201   {object}  entity.GastoPersonal
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finanzas/gastos [post]
func (h *FinanzasHandler) RegistrarGasto(c *fiber.Ctx) error {
	var in dto.RegistrarGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).RegistrarGastoPersonal(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Balance godoc
// @Summary      Balance vida/negocio del mes
// @Tags         finanzas
// @Produce      json
// @Param        usuario_id  path  string  true  "ID del usuario"
// @Success      200  {object}  entity.BalanceVidaNegocio
// @Router       /api/finanzas/balance/{usuario_id} [get]
func (h *FinanzasHandler) Balance(c *fiber.Ctx) error {
	out, err := h.api(c).BalanceVidaNegocio(c.UserContext(), c.Params("usuario_id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// RegistrarCobro godoc
// @Summary      Registrar cobro a cliente
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CobroClienteRequest  true  "proyecto_id, monto, concepto, ref"
// @Success      201   {object}  dto.StatusResponse
// @Router       /api/finanzas/cobros [post]
func (h *FinanzasHandler) RegistrarCobro(c *fiber.Ctx) error {
	var in dto.CobroClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).RegistrarCobroCliente(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
