package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proyecto obra de construcción.
type Proyecto struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre_proyecto"`
	Departamento     string          `json:"departamento,omitempty"`
	PresupuestoTotal decimal.Decimal `json:"presupuesto_total"`
	CreadoEn         *time.Time      `json:"creado_at,omitempty"`
}

// Foto evidencia fotográfica de la bitácora de un proyecto.
type Foto struct {
	ID            string     `json:"id"`
	ProyectoID    string     `json:"proyecto_id,omitempty"`
	URL           string     `json:"url_foto"`
	Comentario    string     `json:"comentario,omitempty"`
	FechaRegistro *time.Time `json:"fecha_registro,omitempty"`
}
