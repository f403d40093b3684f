package finanzas

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// SaldoNeto saldo disponible del dueño: Ingresos - TotalGastos.
func SaldoNeto(ingresos, totalGastos decimal.Decimal) decimal.Decimal {
	return ingresos.Sub(totalGastos)
}

// TotalGastos suma de montos; se usa cuando el backend no envía total_gastos.
func TotalGastos(montos ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range montos {
		total = total.Add(m)
	}
	return total
}

// ConsumoPresupuesto porcentaje consumido: Gastado / Presupuesto * 100, redondeado a 2 decimales.
// Presupuesto <= 0 devuelve 0.
func ConsumoPresupuesto(gastado, presupuesto decimal.Decimal) decimal.Decimal {
	if presupuesto.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return gastado.Div(presupuesto).Mul(cien).Round(2)
}

// MargenUtilidad (Ingresos - Egresos) / Ingresos * 100; 0 si no hay ingresos.
func MargenUtilidad(ingresos, egresos decimal.Decimal) decimal.Decimal {
	if ingresos.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return ingresos.Sub(egresos).Div(ingresos).Mul(cien).Round(2)
}
