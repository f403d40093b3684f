package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

type materialRaw struct {
	ID           texto           `json:"id"`
	Descripcion  texto           `json:"descripcion"`
	Nombre       texto           `json:"nombre"`
	Unidad       texto           `json:"unidad"`
	UnidadCompra texto           `json:"unidad_compra"`
	Cantidad     decimal.Decimal `json:"cantidad"`
}

func (r materialRaw) entity() entity.Material {
	return entity.Material{
		ID:          string(r.ID),
		Descripcion: primero(r.Descripcion, r.Nombre),
		Unidad:      primero(r.Unidad, r.UnidadCompra),
		Cantidad:    r.Cantidad,
	}
}

type ordenRaw struct {
	ID             texto           `json:"id"`
	OcID           texto           `json:"oc_id"`
	ProyectoID     texto           `json:"proyecto_id"`
	NombreProyecto texto           `json:"nombre_proyecto"`
	Proveedor      texto           `json:"proveedor"`
	Total          decimal.Decimal `json:"total"`
	Estado         texto           `json:"estado"`
	Status         texto           `json:"status"`
	FechaEmision   texto           `json:"fecha_emision"`
}

func (r ordenRaw) entity() entity.OrdenCompra {
	return entity.OrdenCompra{
		ID:             primero(r.ID, r.OcID),
		ProyectoID:     string(r.ProyectoID),
		NombreProyecto: string(r.NombreProyecto),
		Proveedor:      string(r.Proveedor),
		Total:          r.Total,
		Estado:         string(r.Estado),
		Mensaje:        string(r.Status),
		FechaEmision:   parseFecha(r.FechaEmision),
	}
}

func materiales(resp *apiclient.Response) ([]entity.Material, error) {
	raws, err := decodeLista[materialRaw](resp)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Material, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.entity())
	}
	return out, nil
}

// Inventario GET /proyectos/{id}/inventario.
func (s *Service) Inventario(ctx context.Context, proyectoID string) ([]entity.Material, error) {
	seg, err := segmento("proyecto_id", proyectoID)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: "/proyectos/" + seg + "/inventario"})
	if err != nil {
		return nil, err
	}
	return materiales(resp)
}

// InventarioResumen GET /inventario/resumen (existencias ENTRADA - SALIDA por insumo).
// proyectoID vacío devuelve el consolidado de todos los proyectos.
func (s *Service) InventarioResumen(ctx context.Context, proyectoID string) ([]entity.Material, error) {
	var q url.Values
	if id := strings.TrimSpace(proyectoID); id != "" {
		q = url.Values{"proyecto_id": {id}}
	}
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: "/inventario/resumen", Query: q})
	if err != nil {
		return nil, err
	}
	return materiales(resp)
}

// CrearOrdenCompra POST /proyectos/{id}/orden-compra con la lista de items como cuerpo.
func (s *Service) CrearOrdenCompra(ctx context.Context, proyectoID string, items []entity.ItemCompra) (*entity.OrdenCompra, error) {
	seg, err := segmento("proyecto_id", proyectoID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("la orden no tiene items: %w", domain.ErrInvalidInput)
	}
	total := decimal.Zero
	for i, it := range items {
		if strings.TrimSpace(it.InsumoID) == "" {
			return nil, fmt.Errorf("item %d sin insumo_id: %w", i+1, domain.ErrInvalidInput)
		}
		if !it.Cantidad.IsPositive() || it.PrecioPactado.IsNegative() {
			return nil, fmt.Errorf("item %d con cantidad o precio inválido: %w", i+1, domain.ErrInvalidInput)
		}
		total = total.Add(it.Cantidad.Mul(it.PrecioPactado))
	}

	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/proyectos/" + seg + "/orden-compra", Body: items})
	if err != nil {
		return nil, err
	}
	var raw ordenRaw
	if err := resp.Decode(&raw); err != nil {
		return nil, err
	}
	oc := raw.entity()
	oc.ProyectoID = strings.TrimSpace(proyectoID)
	if oc.Total.IsZero() {
		oc.Total = total
	}
	if oc.Estado == "" {
		oc.Estado = entity.OrdenPendiente
	}
	return &oc, nil
}

// OrdenesPendientes GET /compras/pendientes-aprobacion.
func (s *Service) OrdenesPendientes(ctx context.Context) ([]entity.OrdenCompra, error) {
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: "/compras/pendientes-aprobacion"})
	if err != nil {
		return nil, err
	}
	raws, err := decodeLista[ordenRaw](resp)
	if err != nil {
		return nil, err
	}
	out := make([]entity.OrdenCompra, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.entity())
	}
	return out, nil
}

// ActualizarEstadoOrden PUT /compras/orden/{id}/estado.
func (s *Service) ActualizarEstadoOrden(ctx context.Context, ordenID, estado string) (*entity.OrdenCompra, error) {
	seg, err := segmento("orden_id", ordenID)
	if err != nil {
		return nil, err
	}
	estado = strings.ToLower(strings.TrimSpace(estado))
	if !entity.ValidEstadoOrden(estado) {
		return nil, fmt.Errorf("estado %q no permitido: %w", estado, domain.ErrInvalidInput)
	}
	resp, err := s.do(ctx, apiclient.Request{
		Method: "PUT",
		Path:   "/compras/orden/" + seg + "/estado",
		Body:   map[string]string{"estado": estado},
	})
	if err != nil {
		return nil, err
	}
	var raw ordenRaw
	if err := resp.Decode(&raw); err != nil {
		return nil, err
	}
	oc := raw.entity()
	if oc.ID == "" {
		oc.ID = strings.TrimSpace(ordenID)
	}
	if oc.Estado == "" {
		oc.Estado = estado
	}
	return &oc, nil
}
