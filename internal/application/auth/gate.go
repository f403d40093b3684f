package auth

import (
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/pkg/jwt"
)

// Decision resultado de evaluar el acceso a una ruta.
type Decision int

const (
	Allowed Decision = iota
	RedirectToLogin
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case RedirectToLogin:
		return "redirect_login"
	case RedirectToHome:
		return "redirect_home"
	}
	return "unknown"
}

// HasSession true si hay un token no vacío bajo cualquiera de las dos claves.
func HasSession(store ports.SessionStore) bool {
	_, ok := Token(store)
	return ok
}

// CurrentRole decodifica el token sin verificar la firma y devuelve el claim "rol".
// ok=false si no hay token o no se puede decodificar; rol vacío si el claim no existe.
func CurrentRole(store ports.SessionStore) (rol string, ok bool) {
	tok, found := Token(store)
	if !found {
		return "", false
	}
	claims, err := jwt.DecodeUnverified(tok)
	if err != nil {
		return "", false
	}
	return claims.Rol, true
}

// Authorize decide el acceso a una ruta según el estado actual del store.
// requiredRole vacío exige solo sesión. Se evalúa en cada navegación, sin caché.
//
// Es un filtro de interfaz: el rol no está verificado y el backend vuelve a
// comprobar permisos en cada endpoint.
func Authorize(store ports.SessionStore, requiredRole string) Decision {
	if !HasSession(store) {
		return RedirectToLogin
	}
	if requiredRole == "" {
		return Allowed
	}
	rol, ok := CurrentRole(store)
	if !ok || rol != requiredRole {
		return RedirectToHome
	}
	return Allowed
}
