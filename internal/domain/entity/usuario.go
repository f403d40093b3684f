package entity

import "time"

// Roles válidos (claim "rol" del token).
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleBodeguero  = "bodeguero"
	RoleTrabajador = "trabajador"
)

// ValidRole indica si rol pertenece al conjunto cerrado de roles.
func ValidRole(rol string) bool {
	switch rol {
	case RoleAdmin, RoleSupervisor, RoleBodeguero, RoleTrabajador:
		return true
	}
	return false
}

// Usuario cuenta de la plataforma tal como la expone la administración.
type Usuario struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Nombre         string     `json:"nombre,omitempty"`
	Telefono       string     `json:"telefono,omitempty"`
	Rol            string     `json:"rol"`
	Activo         bool       `json:"is_active"`
	Aprobado       bool       `json:"is_approved"`
	CreadoEn       *time.Time `json:"creado_en,omitempty"`
	UltimaConexion *time.Time `json:"ultima_conexion,omitempty"`
}
