package finanzas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/softcon-wm/internal/domain/finanzas"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSaldoNeto(t *testing.T) {
	assert.True(t, finanzas.SaldoNeto(d("10000"), d("6700.50")).Equal(d("3299.50")))
	assert.True(t, finanzas.SaldoNeto(d("0"), d("4500")).Equal(d("-4500")), "el saldo puede ser negativo")
}

func TestTotalGastos(t *testing.T) {
	assert.True(t, finanzas.TotalGastos(d("4500"), d("2200")).Equal(d("6700")))
	assert.True(t, finanzas.TotalGastos().Equal(decimal.Zero))
}

func TestConsumoPresupuesto(t *testing.T) {
	assert.True(t, finanzas.ConsumoPresupuesto(d("250000"), d("1000000")).Equal(d("25")))
	assert.True(t, finanzas.ConsumoPresupuesto(d("1"), d("3")).Equal(d("33.33")))
	assert.True(t, finanzas.ConsumoPresupuesto(d("500"), decimal.Zero).IsZero(), "presupuesto cero no divide")
}

func TestMargenUtilidad(t *testing.T) {
	assert.True(t, finanzas.MargenUtilidad(d("200000"), d("150000")).Equal(d("25")))
	assert.True(t, finanzas.MargenUtilidad(decimal.Zero, d("100")).IsZero())
}
