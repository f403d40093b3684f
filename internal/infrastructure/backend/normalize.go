package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// decodeLista acepta un arreglo JSON o un objeto que lo envuelve bajo "items".
func decodeLista[T any](resp *apiclient.Response) ([]T, error) {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || string(body) == "null" {
		return []T{}, nil
	}
	if body[0] == '[' {
		var out []T
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("backend: lista inválida: %w", err)
		}
		return out, nil
	}
	var env struct {
		Items *[]T `json:"items"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("backend: lista inválida: %w", err)
	}
	if env.Items == nil {
		return nil, fmt.Errorf("backend: respuesta sin lista ni items")
	}
	return *env.Items, nil
}

// texto id o cadena que puede venir como string, número o null.
type texto string

func (t *texto) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = texto(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("texto: valor no admitido %s", b)
	}
	*t = texto(b)
	return nil
}

// primero devuelve el primer valor no vacío.
func primero(vals ...texto) string {
	for _, v := range vals {
		if s := strings.TrimSpace(string(v)); s != "" {
			return s
		}
	}
	return ""
}

// parseFecha nil si la fecha viene vacía o en un formato desconocido.
func parseFecha(s texto) *time.Time {
	return apiclient.ParseFecha(string(s))
}
