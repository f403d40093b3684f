package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

// CampoHandler asistencia GPS y reportes de avance desde obra.
type CampoHandler struct {
	api BackendFactory
}

// NewCampoHandler construye el handler.
func NewCampoHandler(api BackendFactory) *CampoHandler {
	return &CampoHandler{api: api}
}

// Asistencia godoc
// @Summary      Marcaje de asistencia GPS
// @Tags         campo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsistenciaRequest  true  "trabajador_id, latitud, longitud"
// @Success      201  {object}  dto.StatusResponse
// @Router       /api/campo/asistencia [post]
func (h *CampoHandler) Asistencia(c *fiber.Ctx) error {
	var in dto.AsistenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	a := entity.Asistencia{TrabajadorID: in.TrabajadorID, Latitud: in.Latitud, Longitud: in.Longitud}
	if in.Fecha != nil {
		a.Fecha = in.Fecha.UTC()
	}
	out, err := h.api(c).RegistrarAsistencia(c.UserContext(), a)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Avance godoc
// @Summary      Reportar avance de un renglón
// @Tags         campo
// @Accept       multipart/form-data
// @Produce      json
// @Param        renglon_id  formData  string  true   "Renglón"
// @Param        cantidad    formData  number  true   "Cantidad ejecutada"
// @Param        comentario  formData  string  false  "Comentario"
// @Param        latitud     formData  number  false  "Latitud"
// @Param        longitud    formData  number  false  "Longitud"
// @Param        foto        formData  file    false  "Foto de evidencia"
// @Success      201  {object}  entity.ResultadoAvance
// @Router       /api/campo/avance [post]
func (h *CampoHandler) Avance(c *fiber.Ctx) error {
	cantidad, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("cantidad")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
	}
	in := entity.ReporteAvance{
		RenglonID:  c.FormValue("renglon_id"),
		Cantidad:   cantidad,
		Comentario: c.FormValue("comentario"),
	}
	if in.Latitud, err = coordenada(c.FormValue("latitud")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "latitud inválida"})
	}
	if in.Longitud, err = coordenada(c.FormValue("longitud")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "longitud inválida"})
	}
	if fh, err := c.FormFile("foto"); err == nil {
		archivo, err := leerArchivo(fh)
		if err != nil {
			return cuerpoInvalido(c)
		}
		in.Foto = &archivo
	}

	out, err := h.api(c).ReportarAvance(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// coordenada vacío es nil (el navegador no dio ubicación).
func coordenada(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
