package dto

import "github.com/jhoicas/softcon-wm/internal/domain/entity"

// CrearOrdenCompraRequest items de una orden de compra.
type CrearOrdenCompraRequest struct {
	Items []entity.ItemCompra `json:"items"`
}

// ActualizarEstadoOrdenRequest cuerpo de PUT /compras/orden/{id}/estado.
type ActualizarEstadoOrdenRequest struct {
	Estado string `json:"estado"`
}

// InventarioResponse materiales listados (opcionalmente filtrados por búsqueda).
type InventarioResponse struct {
	Total      int               `json:"total"`
	Materiales []entity.Material `json:"materiales"`
}
