package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asistencia marcaje GPS de un trabajador en obra.
type Asistencia struct {
	TrabajadorID string    `json:"trabajador_id"`
	Latitud      float64   `json:"latitud"`
	Longitud     float64   `json:"longitud"`
	Fecha        time.Time `json:"fecha"`
}

// ReporteAvance avance de un renglón del presupuesto, con foto opcional.
type ReporteAvance struct {
	RenglonID  string
	Cantidad   decimal.Decimal
	Comentario string
	Latitud    *float64
	Longitud   *float64
	Foto       *Archivo
}

// ResultadoAvance respuesta del backend al registrar un avance.
type ResultadoAvance struct {
	Status          string `json:"status"`
	ConsumoEstimado any    `json:"consumo_estimado,omitempty"`
	AdvertenciaGPS  bool   `json:"advertencia_gps"`
}

// Archivo contenido a subir como parte de un formulario multipart.
type Archivo struct {
	Nombre string
	Datos  []byte
}

// Evidencia foto asociada a un reporte de avance.
type Evidencia struct {
	ID           string     `json:"id"`
	ReporteID    string     `json:"reporte_id"`
	RenglonID    string     `json:"renglon_id,omitempty"`
	FechaReporte *time.Time `json:"fecha_reporte,omitempty"`
	LatitudGPS   *float64   `json:"latitud_gps,omitempty"`
	LongitudGPS  *float64   `json:"longitud_gps,omitempty"`
	URL          string     `json:"url_foto"`
}
