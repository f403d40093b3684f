package ports

import (
	"context"
	"time"

	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

// Directorio lecturas directas a la base de Supabase (tablas proyectos y usuarios).
// Lo implementan el cliente REST de Supabase y el repositorio Postgres.
type Directorio interface {
	ListarProyectos(ctx context.Context) ([]entity.Proyecto, error)
	UsuariosActivos(ctx context.Context, desde time.Time) ([]entity.Usuario, error)
}
