package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/domain/finanzas"
)

// ProyectoHandler proyectos, su estado de resultados y la bitácora fotográfica.
type ProyectoHandler struct {
	api BackendFactory
	pdf ports.ReportePDF
}

// NewProyectoHandler construye el handler.
func NewProyectoHandler(api BackendFactory, pdf ports.ReportePDF) *ProyectoHandler {
	return &ProyectoHandler{api: api, pdf: pdf}
}

// List godoc
// @Summary      Listar proyectos
// @Tags         proyectos
// @Produce      json
// @Success      200  {array}  entity.Proyecto
// @Router       /api/proyectos [get]
func (h *ProyectoHandler) List(c *fiber.Ctx) error {
	out, err := h.api(c).ListarProyectos(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto
// @Tags         proyectos
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  entity.Proyecto
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id} [get]
func (h *ProyectoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.api(c).ObtenerProyecto(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proyecto
// @Description  Acepta nombre/nombre_proyecto/nombreProyecto y depto/departamento.
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProyectoRequest  true  "Datos del proyecto"
// @Success      201   {object}  entity.Proyecto
// @Router       /api/proyectos [post]
func (h *ProyectoHandler) Create(c *fiber.Ctx) error {
	in := dto.CrearProyectoRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return cuerpoInvalido(c)
		}
	}
	out, err := h.api(c).CrearProyecto(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EstadoResultado godoc
// @Summary      Estado de resultados del proyecto
// @Tags         finanzas
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  entity.EstadoResultado
// @Router       /api/proyectos/{id}/finanzas [get]
func (h *ProyectoHandler) EstadoResultado(c *fiber.Ctx) error {
	out, err := h.api(c).EstadoResultado(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EstadoResultadoPDF godoc
// @Summary      Estado de resultados en PDF
// @Tags         finanzas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {file}  binary
// @Router       /api/proyectos/{id}/finanzas/pdf [get]
func (h *ProyectoHandler) EstadoResultadoPDF(c *fiber.Ctx) error {
	api := h.api(c)
	id := c.Params("id")
	er, err := api.EstadoResultado(c.UserContext(), id)
	if err != nil {
		return responderError(c, err)
	}
	if er.NombreProyecto == "" {
		if p, err := api.ObtenerProyecto(c.UserContext(), id); err == nil {
			er.NombreProyecto = p.Nombre
		}
	}
	doc, err := h.pdf.EstadoResultadoPDF(c.UserContext(), er, time.Now())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estado-resultado-%s.pdf"`, er.ProyectoID))
	return c.Send(doc)
}

// Consumo godoc
// @Summary      Consumo del presupuesto (egresos / presupuesto)
// @Tags         finanzas
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ConsumoPresupuestoResponse
// @Router       /api/proyectos/{id}/consumo [get]
func (h *ProyectoHandler) Consumo(c *fiber.Ctx) error {
	api := h.api(c)
	id := c.Params("id")
	p, err := api.ObtenerProyecto(c.UserContext(), id)
	if err != nil {
		return responderError(c, err)
	}
	er, err := api.EstadoResultado(c.UserContext(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ConsumoPresupuestoResponse{
		ProyectoID:  p.ID,
		Presupuesto: p.PresupuestoTotal,
		Gastado:     er.EgresosTotales,
		Porcentaje:  finanzas.ConsumoPresupuesto(er.EgresosTotales, p.PresupuestoTotal),
	})
}

// Fotos godoc
// @Summary      Bitácora fotográfica del proyecto
// @Tags         campo
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {array}  entity.Foto
// @Router       /api/proyectos/{id}/fotos [get]
func (h *ProyectoHandler) Fotos(c *fiber.Ctx) error {
	out, err := h.api(c).ListarFotos(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// SubirFoto godoc
// @Summary      Subir foto a la bitácora
// @Tags         campo
// @Accept       multipart/form-data
// @Produce      json
// @Param        id          path      string  true   "ID del proyecto"
// @Param        foto        formData  file    true   "Imagen"
// @Param        comentario  formData  string  false  "Comentario"
// @Success      201  {object}  entity.Foto
// @Router       /api/proyectos/{id}/fotos [post]
func (h *ProyectoHandler) SubirFoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "foto requerida"})
	}
	archivo, err := leerArchivo(fh)
	if err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.api(c).SubirFoto(c.UserContext(), c.Params("id"), archivo, c.FormValue("comentario"))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Evidencias godoc
// @Summary      Evidencias de avance del proyecto
// @Tags         campo
// @Produce      json
// @Param        id     path   string  true   "ID del proyecto"
// @Param        limit  query  int     false  "Límite"  default(30)
// @Success      200  {array}  entity.Evidencia
// @Router       /api/proyectos/{id}/evidencias [get]
func (h *ProyectoHandler) Evidencias(c *fiber.Ctx) error {
	out, err := h.api(c).Evidencias(c.UserContext(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// leerArchivo carga en memoria un archivo subido al portal.
func leerArchivo(fh *multipart.FileHeader) (entity.Archivo, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.Archivo{}, err
	}
	defer f.Close()
	datos, err := io.ReadAll(f)
	if err != nil {
		return entity.Archivo{}, err
	}
	return entity.Archivo{Nombre: strings.TrimSpace(fh.Filename), Datos: datos}, nil
}
