package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoResultado resumen financiero de un proyecto (ingresos vs. egresos).
type EstadoResultado struct {
	ProyectoID        string          `json:"proyecto_id"`
	NombreProyecto    string          `json:"nombre_proyecto,omitempty"`
	Ingresos          decimal.Decimal `json:"ingresos"`
	EgresosMateriales decimal.Decimal `json:"egresos_materiales"`
	EgresosPlanilla   decimal.Decimal `json:"egresos_planilla"`
	EgresosTotales    decimal.Decimal `json:"egresos_totales"`
	UtilidadNeta      decimal.Decimal `json:"utilidad_neta"`
	MargenUtilidad    decimal.Decimal `json:"margen_utilidad"` // porcentaje
}

// GastoPersonal gasto del dueño (finanzas personales).
type GastoPersonal struct {
	ID          string          `json:"id,omitempty"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       *time.Time      `json:"fecha,omitempty"`
}

// ResumenFinanzasPersonales forma canónica de los dos formatos que devuelve el backend.
type ResumenFinanzasPersonales struct {
	Ingresos    decimal.Decimal `json:"ingresos"`
	TotalGastos decimal.Decimal `json:"total_gastos"`
	SaldoNeto   decimal.Decimal `json:"saldo_neto"`
	Gastos      []GastoPersonal `json:"gastos"`
}

// BalanceVidaNegocio relación entre utilidades de proyectos y gastos personales del mes.
type BalanceVidaNegocio struct {
	UsuarioID                string          `json:"usuario_id"`
	UtilidadProyectos        decimal.Decimal `json:"utilidad_proyectos"`
	IngresoDisponibleEmpresa decimal.Decimal `json:"ingreso_disponible_empresa"`
	GastosPersonalesTotales  decimal.Decimal `json:"gastos_personales_totales"`
	AhorroNetoDelMes         decimal.Decimal `json:"ahorro_neto_del_mes"`
	SaludFinanciera          string          `json:"salud_financiera"`
}

// CobroCliente ingreso de un proyecto (pago del cliente).
type CobroCliente struct {
	ProyectoID string          `json:"proyecto_id"`
	Monto      decimal.Decimal `json:"monto"`
	Concepto   string          `json:"concepto"`
	Referencia string          `json:"ref"`
}
