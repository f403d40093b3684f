package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

var _ ports.Directorio = (*DirectorioRepo)(nil)

// DirectorioRepo lecturas de proyectos y usuarios activos directo sobre Postgres.
type DirectorioRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewDirectorioRepository construye el adaptador sobre un pool abierto.
func NewDirectorioRepository(pool *pgxpool.Pool, dsn string, log zerolog.Logger) *DirectorioRepo {
	log.Info().Str("host", hostDeDSN(dsn)).Msg("directorio sobre Postgres")
	return &DirectorioRepo{pool: pool, log: log}
}

const queryProyectos = `
	SELECT id::text, nombre_proyecto, COALESCE(departamento, ''),
	       COALESCE(presupuesto_total, 0)::numeric, creado_at
	FROM proyectos
	ORDER BY creado_at DESC NULLS LAST`

// ListarProyectos proyectos, más recientes primero.
func (r *DirectorioRepo) ListarProyectos(ctx context.Context) ([]entity.Proyecto, error) {
	rows, err := r.pool.Query(ctx, queryProyectos)
	if err != nil {
		return nil, errorConsulta("listar proyectos", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Proyecto, error) {
		var p entity.Proyecto
		err := row.Scan(&p.ID, &p.Nombre, &p.Departamento, &p.PresupuestoTotal, &p.CreadoEn)
		return p, err
	})
	if err != nil {
		return nil, errorConsulta("listar proyectos", err)
	}
	return out, nil
}

const queryUsuariosActivos = `
	SELECT id::text, username, email, COALESCE(nombre, ''), COALESCE(telefono, ''),
	       COALESCE(rol, 'trabajador'), COALESCE(is_active, true), COALESCE(is_approved, false),
	       creado_en, ultima_conexion
	FROM usuarios
	WHERE ultima_conexion >= $1
	ORDER BY ultima_conexion DESC`

// UsuariosActivos usuarios con conexión desde el instante dado.
func (r *DirectorioRepo) UsuariosActivos(ctx context.Context, desde time.Time) ([]entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, queryUsuariosActivos, desde.UTC())
	if err != nil {
		return nil, errorConsulta("usuarios activos", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Usuario, error) {
		var u entity.Usuario
		err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Nombre, &u.Telefono,
			&u.Rol, &u.Activo, &u.Aprobado, &u.CreadoEn, &u.UltimaConexion)
		return u, err
	})
	if err != nil {
		return nil, errorConsulta("usuarios activos", err)
	}
	return out, nil
}
