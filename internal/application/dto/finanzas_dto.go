package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarGastoRequest cuerpo de registro de gasto personal.
type RegistrarGastoRequest struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Categoria   string          `json:"categoria"`
	Fecha       *time.Time      `json:"fecha,omitempty"`
}

// CobroClienteRequest ingreso de proyecto (se envía como query params).
type CobroClienteRequest struct {
	ProyectoID string          `json:"proyecto_id"`
	Monto      decimal.Decimal `json:"monto"`
	Concepto   string          `json:"concepto"`
	Referencia string          `json:"ref"`
}

// ConsumoPresupuestoResponse consumo del presupuesto de un proyecto.
type ConsumoPresupuestoResponse struct {
	ProyectoID  string          `json:"proyecto_id"`
	Presupuesto decimal.Decimal `json:"presupuesto"`
	Gastado     decimal.Decimal `json:"gastado"`
	Porcentaje  decimal.Decimal `json:"porcentaje"`
}
