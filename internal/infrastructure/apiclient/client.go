// Package apiclient es el núcleo HTTP del portal: un único punto de entrada para
// todas las llamadas al backend, con inyección del token bearer a la salida e
// invalidación de la sesión ante un 401 a la entrada.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
)

const (
	defaultUserAgent = "softcon-wm-portal/1.0"
	headerRequestID  = "X-Request-Id"
	maxBodyBytes     = 8 << 20
)

// Request sobre de una petición. Body puede ser nil, Form, url.Values, *Multipart
// o cualquier valor serializable a JSON.
type Request struct {
	Method string
	Path   string // escapado; un id con "/" o espacios va como url.PathEscape(id)
	Query  url.Values
	Body   any
	Header http.Header
}

// Response respuesta 2xx ya leída.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode deserializa el cuerpo JSON en v. Un cuerpo vacío no es error.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("api: deserializar respuesta: %w", err)
	}
	return nil
}

// Client núcleo HTTP. Es seguro para uso concurrente; el SessionStore es el único
// estado compartido y no se bloquea entre peticiones.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	store     ports.SessionStore
	headers   http.Header
	userAgent string
	log       zerolog.Logger
	observer  Observer
}

// Observer recibe la duración y el estado de cada intercambio; status 0 si no hubo respuesta.
type Observer interface {
	ObservarBackend(method string, status int, d time.Duration)
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el transporte. Por defecto no hay timeout propio.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger registra cada intercambio a nivel debug.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithObserver reporta cada intercambio (métricas).
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithHeader agrega una cabecera fija a todas las peticiones (p. ej. apikey de Supabase).
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New construye el cliente. baseURL vacío usa el origen local de desarrollo.
func New(baseURL string, store ports.SessionStore, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		store:     store,
		headers:   make(http.Header),
		userAgent: defaultUserAgent,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithStore devuelve una copia ligada a otro SessionStore que comparte transporte.
func (c *Client) WithStore(store ports.SessionStore) *Client {
	dup := *c
	dup.store = store
	return &dup
}

// Store SessionStore asociado.
func (c *Client) Store() ports.SessionStore { return c.store }

// BaseURL origen configurado.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// Do ejecuta la petición. Errores: *NetworkError si no hubo respuesta,
// *HTTPStatusError si el estado no es 2xx. Un 401 borra la sesión antes de volver.
func (c *Client) Do(ctx context.Context, in Request) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("api: client is nil")
	}
	method := strings.ToUpper(strings.TrimSpace(in.Method))
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(in.Path, "/") {
		return nil, fmt.Errorf("api: path inválido %q", in.Path)
	}

	req, err := c.newRequest(ctx, method, in)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observar(method, 0, start)
		c.log.Debug().Err(err).Str("method", method).Str("path", in.Path).Msg("petición sin respuesta")
		return nil, &NetworkError{Method: method, Path: in.Path, Err: err}
	}
	defer resp.Body.Close()

	c.observar(method, resp.StatusCode, start)
	c.log.Debug().
		Str("method", method).
		Str("path", in.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", req.Header.Get(headerRequestID)).
		Msg("api")

	// El 401 limpia la sesión aunque el cuerpo no se pueda leer.
	if resp.StatusCode == http.StatusUnauthorized && c.store != nil {
		auth.LimpiarSesion(c.store)
		c.log.Info().Str("path", in.Path).Msg("401 recibido: sesión local eliminada")
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	demasiadoGrande := len(body) > maxBodyBytes
	if demasiadoGrande {
		body = body[:maxBodyBytes]
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Hubo respuesta: el estado manda aunque el cuerpo llegue incompleto.
		return nil, &HTTPStatusError{
			Method:     method,
			Path:       in.Path,
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
			Body:       body,
		}
	}
	if readErr != nil {
		return nil, &NetworkError{Method: method, Path: in.Path, Err: fmt.Errorf("leer respuesta: %w", readErr)}
	}
	if demasiadoGrande {
		return nil, fmt.Errorf("api: %s %s: %w (más de %d bytes)", method, in.Path, ErrRespuestaDemasiadoGrande, maxBodyBytes)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func (c *Client) observar(method string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObservarBackend(method, status, time.Since(start))
	}
}

func (c *Client) newRequest(ctx context.Context, method string, in Request) (*http.Request, error) {
	// in.Path llega ya escapado (los ids los escapa quien arma la ruta).
	escaped := c.baseURL.EscapedPath() + in.Path
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		return nil, fmt.Errorf("api: path mal escapado %q: %w", in.Path, err)
	}
	target := *c.baseURL
	target.Path = unescaped
	target.RawPath = escaped
	if len(in.Query) > 0 {
		target.RawQuery = in.Query.Encode()
	}

	reader, contentType, overridable, err := encodeBody(in.Body)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, in.Path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("api: crear request: %w", err)
	}

	for k, vals := range c.headers {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	for k, vals := range in.Header {
		req.Header.Del(k)
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	switch {
	case contentType == "":
	case !overridable:
		req.Header.Set("Content-Type", contentType)
	case req.Header.Get("Content-Type") == "":
		req.Header.Set("Content-Type", contentType)
	}

	if req.Header.Get("Authorization") == "" {
		if tok, ok := auth.Token(c.store); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if req.Header.Get(headerRequestID) == "" {
		id := RequestIDFrom(ctx)
		if id == "" {
			id = uuid.NewString()
		}
		req.Header.Set(headerRequestID, id)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", contentTypeJSON)
	}
	return req, nil
}

// parseBaseURL valida el origen del backend y descarta query y fragmento.
func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "http://localhost:8000"
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("api: base URL inválida: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api: base URL sin host: %q", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = strings.TrimRight(u.RawPath, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
