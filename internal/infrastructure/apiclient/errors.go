package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrRespuestaDemasiadoGrande el cuerpo 2xx supera el límite de lectura.
var ErrRespuestaDemasiadoGrande = errors.New("api: respuesta demasiado grande")

// NetworkError no llegó ninguna respuesta (sin conexión, DNS, timeout de transporte, cancelación).
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: %s %s: sin respuesta: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError respuesta recibida con estado distinto de 2xx.
type HTTPStatusError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string // detalle provisto por el servidor, vacío si no vino
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: %s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// StatusCode devuelve el código HTTP de err si es (o envuelve) un HTTPStatusError; 0 si no.
func StatusCode(err error) int {
	var he *HTTPStatusError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// IsNetwork indica si err es (o envuelve) un NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// UserMessage texto apto para el usuario: el detalle del servidor si existe, si no el genérico.
func UserMessage(err error, fallback string) string {
	var he *HTTPStatusError
	if errors.As(err, &he) && he.Detail != "" {
		return he.Detail
	}
	return fallback
}

// errorPayload campos de error conocidos: FastAPI usa "detail"; Supabase GoTrue y
// PostgREST usan "error_description", "message" o "msg".
type errorPayload struct {
	Detail           json.RawMessage `json:"detail"`
	ErrorDescription string          `json:"error_description"`
	Message          string          `json:"message"`
	Msg              string          `json:"msg"`
}

// parseDetail extrae el detalle de error del cuerpo; vacío si no es JSON reconocible.
func parseDetail(body []byte) string {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return ""
	}
	if d := detailText(p.Detail); d != "" {
		return d
	}
	for _, s := range []string{p.ErrorDescription, p.Message, p.Msg} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// detailText admite detail como string o como lista de errores de validación [{msg}].
func detailText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return strings.TrimSpace(string(raw))
}
