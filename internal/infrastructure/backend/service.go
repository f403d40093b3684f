// Package backend es la fachada de endpoints del backend REST de SOFTCON: un
// método por operación de dominio. Toda forma de respuesta aceptada se normaliza
// aquí a un tipo de entity; ninguna forma ambigua sale de este paquete.
package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// Requester ejecuta una petición contra el backend (lo implementa *apiclient.Client).
type Requester interface {
	Do(ctx context.Context, req apiclient.Request) (*apiclient.Response, error)
}

// storeBinder Requester que admite otro SessionStore (*apiclient.Client).
type storeBinder interface {
	WithStore(store ports.SessionStore) *apiclient.Client
}

var (
	_ ports.AuthAPI          = (*Service)(nil)
	_ ports.AuthAPIConSesion = (*Service)(nil)
	_ storeBinder            = (*apiclient.Client)(nil)
)

// FallbackObserver recibe el resultado de cada fallback: primaria es la ruta que
// falló primero; ok indica si alguna alternativa respondió.
type FallbackObserver interface {
	ObservarFallback(primaria string, ok bool)
}

// Service fachada del backend. Sin estado propio: la sesión vive en el Requester.
type Service struct {
	api      Requester
	log      zerolog.Logger
	fallback FallbackObserver
}

// Option configura el Service.
type Option func(*Service)

// WithFallbackObserver reporta el uso de rutas alternas (métricas).
func WithFallbackObserver(o FallbackObserver) Option {
	return func(s *Service) { s.fallback = o }
}

// New construye la fachada sobre el núcleo HTTP.
func New(api Requester, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{api: api, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConSesion copia de la fachada cuyo núcleo HTTP usa store. Si el Requester no
// admite cambiar de store se devuelve la misma fachada.
func (s *Service) ConSesion(store ports.SessionStore) ports.AuthAPI {
	b, ok := s.api.(storeBinder)
	if !ok {
		return s
	}
	dup := *s
	dup.api = b.WithStore(store)
	return &dup
}

func (s *Service) do(ctx context.Context, req apiclient.Request) (*apiclient.Response, error) {
	return s.api.Do(ctx, req)
}

// get ejecuta un GET y deserializa la respuesta en out.
func (s *Service) get(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: path, Query: query})
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// segmento escapa un id para usarlo dentro del path; vacío es entrada inválida.
func segmento(campo, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%s requerido: %w", campo, domain.ErrInvalidInput)
	}
	return url.PathEscape(id), nil
}
