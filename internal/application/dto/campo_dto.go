package dto

import "time"

// AsistenciaRequest marcaje GPS recibido por el portal.
type AsistenciaRequest struct {
	TrabajadorID string     `json:"trabajador_id"`
	Latitud      float64    `json:"latitud"`
	Longitud     float64    `json:"longitud"`
	Fecha        *time.Time `json:"fecha,omitempty"`
}
