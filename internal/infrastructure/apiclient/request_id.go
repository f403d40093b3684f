package apiclient

import "context"

type requestIDKey struct{}

// HeaderRequestID cabecera de correlación entre portal y backend.
const HeaderRequestID = headerRequestID

// ContextWithRequestID asocia el id de la petición entrante; Do lo reenvía al backend.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom id asociado al contexto, "" si no hay.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
