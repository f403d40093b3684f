package apiclient

import (
	"strings"
	"time"
)

var layoutsFecha = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseFecha interpreta las fechas ISO que devuelven el backend y PostgREST, con o
// sin zona (sin zona se asume UTC). nil si está vacía o no se reconoce.
func ParseFecha(s string) *time.Time {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
