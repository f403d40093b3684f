package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// Alias aceptados al crear un proyecto, en orden de preferencia.
var (
	aliasNombre       = []string{"nombre", "nombre_proyecto", "nombreProyecto"}
	aliasDepartamento = []string{"depto", "departamento"}
)

type proyectoRaw struct {
	ID               texto           `json:"id"`
	NombreProyecto   texto           `json:"nombre_proyecto"`
	Nombre           texto           `json:"nombre"`
	Departamento     texto           `json:"departamento"`
	Depto            texto           `json:"depto"`
	PresupuestoTotal decimal.Decimal `json:"presupuesto_total"`
	CreadoAt         texto           `json:"creado_at"`
	CreadoEn         texto           `json:"creado_en"`
}

func (r proyectoRaw) entity() entity.Proyecto {
	return entity.Proyecto{
		ID:               string(r.ID),
		Nombre:           primero(r.NombreProyecto, r.Nombre),
		Departamento:     primero(r.Departamento, r.Depto),
		PresupuestoTotal: r.PresupuestoTotal,
		CreadoEn:         parseFecha(texto(primero(r.CreadoAt, r.CreadoEn))),
	}
}

// ListarProyectos GET /proyectos. Algunas versiones del backend no lo exponen:
// el llamador decide cómo degradar ante un 404/405.
func (s *Service) ListarProyectos(ctx context.Context) ([]entity.Proyecto, error) {
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: "/proyectos"})
	if err != nil {
		return nil, err
	}
	raws, err := decodeLista[proyectoRaw](resp)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Proyecto, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.entity())
	}
	return out, nil
}

// ObtenerProyecto GET /proyectos/{id}.
func (s *Service) ObtenerProyecto(ctx context.Context, id string) (*entity.Proyecto, error) {
	seg, err := segmento("proyecto_id", id)
	if err != nil {
		return nil, err
	}
	var raw proyectoRaw
	if err := s.get(ctx, "/proyectos/"+seg, nil, &raw); err != nil {
		return nil, err
	}
	p := raw.entity()
	return &p, nil
}

// CrearProyecto con nombre y departamento presentes (bajo cualquier alias) envía
// POST /proyectos?nombre=&depto=; si falta alguno envía la entrada como cuerpo JSON
// al mismo endpoint.
func (s *Service) CrearProyecto(ctx context.Context, input map[string]any) (*entity.Proyecto, error) {
	nombre := campoAlias(input, aliasNombre...)
	depto := campoAlias(input, aliasDepartamento...)

	req := apiclient.Request{Method: "POST", Path: "/proyectos"}
	if nombre != "" && depto != "" {
		req.Query = url.Values{"nombre": {nombre}, "depto": {depto}}
	} else {
		body := input
		if body == nil {
			body = map[string]any{}
		}
		req.Body = body
	}

	resp, err := s.do(ctx, req)
	if err != nil {
		return nil, err
	}
	var raw proyectoRaw
	if err := resp.Decode(&raw); err != nil {
		return nil, err
	}
	p := raw.entity()
	if p.Nombre == "" {
		p.Nombre = nombre
	}
	if p.Departamento == "" {
		p.Departamento = depto
	}
	return &p, nil
}

// campoAlias devuelve el primer alias presente y no nulo, convertido a texto. Un
// alias presente pero vacío gana igual (y deja el campo vacío).
func campoAlias(input map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := input[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}
