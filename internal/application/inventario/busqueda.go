package inventario

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

// Fuente lectura de materiales del backend.
type Fuente interface {
	Inventario(ctx context.Context, proyectoID string) ([]entity.Material, error)
}

// UseCase consulta de inventario con búsqueda local.
type UseCase struct {
	fuente Fuente
}

// NewUseCase construye el caso de uso.
func NewUseCase(f Fuente) *UseCase {
	return &UseCase{fuente: f}
}

// Buscar lista el inventario y filtra por q (sin distinguir mayúsculas ni tildes).
// Con q vacío devuelve todo.
func (uc *UseCase) Buscar(ctx context.Context, proyectoID, q string) (*dto.InventarioResponse, error) {
	ms, err := uc.fuente.Inventario(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	ms = Filtrar(ms, q)
	return &dto.InventarioResponse{Total: len(ms), Materiales: ms}, nil
}

// Filtrar materiales cuya descripción, unidad o id contengan todas las palabras de q.
func Filtrar(ms []entity.Material, q string) []entity.Material {
	palabras := strings.Fields(Plegar(q))
	if len(palabras) == 0 {
		return ms
	}
	out := make([]entity.Material, 0, len(ms))
	for _, m := range ms {
		texto := Plegar(m.Descripcion + " " + m.Unidad + " " + m.ID)
		if contieneTodas(texto, palabras) {
			out = append(out, m)
		}
	}
	return out
}

func contieneTodas(texto string, palabras []string) bool {
	for _, p := range palabras {
		if !strings.Contains(texto, p) {
			return false
		}
	}
	return true
}

// Plegar pasa a minúsculas y quita diacríticos: "Tubería PVC ½" -> "tuberia pvc ½".
func Plegar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
