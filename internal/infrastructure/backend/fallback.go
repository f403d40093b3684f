package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// EndpointShapeError fallaron todas las formas candidatas de un endpoint.
// Err es el error del último intento (el diagnóstico más reciente).
type EndpointShapeError struct {
	Attempts []string // "METHOD /path" en el orden intentado
	Err      error
}

func (e *EndpointShapeError) Error() string {
	return fmt.Sprintf("backend: ningún endpoint respondió (%s): %v", strings.Join(e.Attempts, ", "), e.Err)
}

func (e *EndpointShapeError) Unwrap() error { return e.Err }

// firstSuccess prueba las candidatas en orden y devuelve la primera respuesta 2xx.
// Cualquier error (incluido 401) pasa a la siguiente; no hay reintentos extra.
func (s *Service) firstSuccess(ctx context.Context, candidates ...apiclient.Request) (*apiclient.Response, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("backend: firstSuccess sin candidatas")
	}
	attempts := make([]string, 0, len(candidates))
	var lastErr error
	for i, c := range candidates {
		attempts = append(attempts, c.Method+" "+c.Path)
		resp, err := s.do(ctx, c)
		if err == nil {
			if i > 0 {
				s.log.Debug().Str("path", c.Path).Int("intento", i+1).Msg("respondió la forma alternativa")
				s.observarFallback(candidates[0].Path, true)
			}
			return resp, nil
		}
		lastErr = err
		if i < len(candidates)-1 {
			s.log.Debug().Err(err).Str("path", c.Path).Msg("forma primaria falló, probando alternativa")
		}
	}
	if len(candidates) > 1 {
		s.observarFallback(candidates[0].Path, false)
	}
	return nil, &EndpointShapeError{Attempts: attempts, Err: lastErr}
}

func (s *Service) observarFallback(primaria string, ok bool) {
	if s.fallback != nil {
		s.fallback.ObservarFallback(primaria, ok)
	}
}
