package ports

// SessionStore almacén clave/valor persistente de la sesión (equivalente al localStorage
// del navegador). Cada clave se lee y escribe de forma atómica; no hay transacciones
// entre claves.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}
