package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrdenPendiente = "pendiente"
	OrdenAprobada  = "aprobada"
	OrdenRechazada = "rechazada"
	OrdenEntregada = "entregada"
)

// ValidEstadoOrden indica si el estado es uno de los aceptados por el backend.
func ValidEstadoOrden(estado string) bool {
	switch estado {
	case OrdenPendiente, OrdenAprobada, OrdenRechazada, OrdenEntregada:
		return true
	}
	return false
}

// Material insumo con existencia en obra.
type Material struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Unidad      string          `json:"unidad,omitempty"`
	Cantidad    decimal.Decimal `json:"cantidad"`
}

// ItemCompra línea de una orden de compra.
type ItemCompra struct {
	InsumoID      string          `json:"insumo_id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	PrecioPactado decimal.Decimal `json:"precio_pactado"`
}

// OrdenCompra orden de compra de materiales para un proyecto.
type OrdenCompra struct {
	ID             string          `json:"id"`
	ProyectoID     string          `json:"proyecto_id,omitempty"`
	NombreProyecto string          `json:"nombre_proyecto,omitempty"`
	Proveedor      string          `json:"proveedor,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Estado         string          `json:"estado,omitempty"`
	Mensaje        string          `json:"mensaje,omitempty"`
	FechaEmision   *time.Time      `json:"fecha_emision,omitempty"`
}
