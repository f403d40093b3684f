package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/softcon-wm/internal/domain"
)

// Códigos SQLSTATE que el directorio distingue.
const (
	pgTablaInexistente = "42P01" // undefined_table
	pgSinPermisos      = "42501" // insufficient_privilege
)

// errorConsulta envuelve err con la operación. Tabla inexistente y falta de
// permisos se traducen a errores de dominio.
func errorConsulta(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgTablaInexistente:
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, domain.ErrNotFound)
		case pgSinPermisos:
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, domain.ErrForbidden)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
