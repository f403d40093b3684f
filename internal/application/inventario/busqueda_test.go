package inventario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softcon-wm/internal/application/inventario"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

type fuenteFake struct {
	ms  []entity.Material
	err error
	pid string
}

func (f *fuenteFake) Inventario(_ context.Context, proyectoID string) ([]entity.Material, error) {
	f.pid = proyectoID
	return f.ms, f.err
}

var materiales = []entity.Material{
	{ID: "m1", Descripcion: "Tubería PVC 1/2\"", Unidad: "tubo"},
	{ID: "m2", Descripcion: "Cemento gris", Unidad: "saco"},
	{ID: "m3", Descripcion: "Varilla de hierro 3/8", Unidad: "quintal"},
}

func TestPlegar(t *testing.T) {
	assert.Equal(t, "tuberia electrica", inventario.Plegar("Tubería ELÉCTRICA"))
	assert.Equal(t, "pinon", inventario.Plegar("Piñón"))
}

func TestFiltrar_SinTildes(t *testing.T) {
	got := inventario.Filtrar(materiales, "tuberia")
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}

func TestFiltrar_TodasLasPalabras(t *testing.T) {
	assert.Len(t, inventario.Filtrar(materiales, "hierro quintal"), 1)
	assert.Empty(t, inventario.Filtrar(materiales, "hierro saco"))
}

func TestFiltrar_QueryVacioDevuelveTodo(t *testing.T) {
	assert.Len(t, inventario.Filtrar(materiales, "   "), 3)
}

func TestBuscar(t *testing.T) {
	f := &fuenteFake{ms: materiales}
	uc := inventario.NewUseCase(f)

	out, err := uc.Buscar(context.Background(), "p1", "CEMENTO")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "p1", f.pid)
}

func TestBuscar_PropagaError(t *testing.T) {
	uc := inventario.NewUseCase(&fuenteFake{err: errors.New("caído")})
	_, err := uc.Buscar(context.Background(), "", "x")
	assert.EqualError(t, err, "caído")
}
