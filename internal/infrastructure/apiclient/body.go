package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// FormField par clave/valor de un formulario urlencoded.
type FormField struct {
	Key   string
	Value string
}

// Form cuerpo application/x-www-form-urlencoded que conserva el orden de inserción.
type Form []FormField

// Encode serializa el formulario en orden.
func (f Form) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

type multipartPart struct {
	field    string
	filename string // vacío = campo de texto
	data     []byte
}

// Multipart cuerpo multipart/form-data. El Content-Type con su boundary lo fija
// el codificador, nunca el llamador. Se guarda en memoria para poder reenviarlo.
type Multipart struct {
	parts []multipartPart
}

// NewMultipart crea un formulario multipart vacío.
func NewMultipart() *Multipart { return &Multipart{} }

// Field agrega un campo de texto.
func (m *Multipart) Field(name, value string) *Multipart {
	m.parts = append(m.parts, multipartPart{field: name, data: []byte(value)})
	return m
}

// File agrega un archivo.
func (m *Multipart) File(field, filename string, data []byte) *Multipart {
	if filename == "" {
		filename = field
	}
	m.parts = append(m.parts, multipartPart{field: field, filename: filename, data: data})
	return m
}

func (m *Multipart) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range m.parts {
		if p.filename == "" {
			if err := w.WriteField(p.field, string(p.data)); err != nil {
				return nil, "", err
			}
			continue
		}
		fw, err := w.CreateFormFile(p.field, p.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(p.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// encodeBody devuelve el lector del cuerpo, el Content-Type por defecto y si el
// llamador puede sobrescribirlo.
func encodeBody(body any) (r io.Reader, contentType string, overridable bool, err error) {
	switch b := body.(type) {
	case nil:
		return nil, "", true, nil
	case *Multipart:
		if b == nil {
			b = NewMultipart()
		}
		r, ct, err := b.encode()
		if err != nil {
			return nil, "", false, fmt.Errorf("codificar multipart: %w", err)
		}
		return r, ct, false, nil
	case Form:
		return strings.NewReader(b.Encode()), contentTypeForm, true, nil
	case url.Values:
		return strings.NewReader(b.Encode()), contentTypeForm, true, nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", true, fmt.Errorf("serializar JSON: %w", err)
		}
		return bytes.NewReader(raw), contentTypeJSON, true, nil
	}
}
