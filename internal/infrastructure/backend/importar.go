package backend

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// ImportarMaestro POST /importar/maestro con el CSV en el campo multipart "file".
// Los CSV exportados desde Excel llegan en Windows-1252 o UTF-16; se pasan a UTF-8.
func (s *Service) ImportarMaestro(ctx context.Context, archivo entity.Archivo) (*dto.StatusResponse, error) {
	if len(bytes.TrimSpace(archivo.Datos)) == 0 {
		return nil, fmt.Errorf("CSV vacío: %w", domain.ErrInvalidInput)
	}
	datos, err := CSVaUTF8(archivo.Datos)
	if err != nil {
		return nil, err
	}
	form := apiclient.NewMultipart().File("file", nombreArchivo(archivo.Nombre, "maestro.csv"), datos)

	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/importar/maestro", Body: form})
	if err != nil {
		return nil, err
	}
	var out dto.StatusResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CSVaUTF8 devuelve datos intactos si ya son UTF-8 válido (sin BOM). Si no, detecta
// UTF-16/32 ("Texto Unicode" de Excel); lo demás se decodifica como Windows-1252.
func CSVaUTF8(datos []byte) ([]byte, error) {
	if utf8.Valid(datos) {
		return bytes.TrimPrefix(datos, []byte("\xef\xbb\xbf")), nil
	}
	nombre, enc := detectarCodificacion(datos)
	out, _, err := transform.Bytes(enc.NewDecoder(), datos)
	if err != nil {
		return nil, fmt.Errorf("CSV: transcodificar %s: %w", nombre, err)
	}
	return bytes.TrimPrefix(out, []byte("\xef\xbb\xbf")), nil
}

func detectarCodificacion(datos []byte) (string, encoding.Encoding) {
	r, err := chardet.NewTextDetector().DetectBest(datos)
	// Solo se confía en la detección de UTF-16/32: con CSV cortos en español las
	// variantes ISO-8859 se confunden entre sí.
	if err == nil && strings.HasPrefix(r.Charset, "UTF-") && r.Charset != "UTF-8" {
		switch r.Charset {
		case "UTF-32LE":
			return r.Charset, utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
		case "UTF-32BE":
			return r.Charset, utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
		}
		if enc, err := htmlindex.Get(r.Charset); err == nil {
			return r.Charset, enc
		}
	}
	return "windows-1252", charmap.Windows1252
}
