package auth

import (
	"strings"

	"github.com/jhoicas/softcon-wm/internal/application/ports"
)

// Claves legadas del token. Se escriben y borran juntas; al leer gana KeyToken.
const (
	KeyToken     = "token"
	KeyUserToken = "userToken"
)

// Token devuelve el token de sesión vigente, si existe.
func Token(store ports.SessionStore) (string, bool) {
	if store == nil {
		return "", false
	}
	for _, key := range []string{KeyToken, KeyUserToken} {
		if v, ok := store.Get(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// GuardarToken escribe el token bajo ambas claves.
func GuardarToken(store ports.SessionStore, token string) {
	store.Set(KeyToken, token)
	store.Set(KeyUserToken, token)
}

// LimpiarSesion borra el token bajo ambas claves.
func LimpiarSesion(store ports.SessionStore) {
	store.Delete(KeyToken)
	store.Delete(KeyUserToken)
}
