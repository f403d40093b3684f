package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

const (
	limiteEvidenciasPorDefecto = 30
	limiteMaximo               = 200
)

// validarUUID el backend declara estos ids como UUID y responde 422 si no lo son;
// se rechazan antes de enviar.
func validarUUID(campo, id string) (string, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%s no es un UUID válido: %w", campo, domain.ErrInvalidInput)
	}
	return id, nil
}

// RegistrarAsistencia POST /campo/asistencia (marcaje GPS). Fecha cero usa la hora actual.
func (s *Service) RegistrarAsistencia(ctx context.Context, in entity.Asistencia) (*dto.StatusResponse, error) {
	id, err := validarUUID("trabajador_id", in.TrabajadorID)
	if err != nil {
		return nil, err
	}
	if in.Latitud < -90 || in.Latitud > 90 || in.Longitud < -180 || in.Longitud > 180 {
		return nil, fmt.Errorf("coordenadas fuera de rango: %w", domain.ErrInvalidInput)
	}
	in.TrabajadorID = id
	if in.Fecha.IsZero() {
		in.Fecha = time.Now().UTC()
	}

	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/campo/asistencia", Body: in})
	if err != nil {
		return nil, err
	}
	var out struct {
		dto.StatusResponse
		AsistenciaID string `json:"asistencia_id"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = out.AsistenciaID
	}
	return &out.StatusResponse, nil
}

// ReportarAvance POST /campo/reportar-avance como multipart (renglon_id, cantidad,
// comentario, latitud, longitud y foto opcionales).
func (s *Service) ReportarAvance(ctx context.Context, in entity.ReporteAvance) (*entity.ResultadoAvance, error) {
	renglon, err := validarUUID("renglon_id", in.RenglonID)
	if err != nil {
		return nil, err
	}
	if !in.Cantidad.IsPositive() {
		return nil, fmt.Errorf("cantidad debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}

	form := apiclient.NewMultipart().
		Field("renglon_id", renglon).
		Field("cantidad", in.Cantidad.String())
	if c := strings.TrimSpace(in.Comentario); c != "" {
		form.Field("comentario", c)
	}
	if in.Latitud != nil && in.Longitud != nil {
		form.Field("latitud", strconv.FormatFloat(*in.Latitud, 'f', -1, 64)).
			Field("longitud", strconv.FormatFloat(*in.Longitud, 'f', -1, 64))
	}
	if in.Foto != nil && len(in.Foto.Datos) > 0 {
		form.File("foto", nombreArchivo(in.Foto.Nombre, "evidencia.jpg"), in.Foto.Datos)
	}

	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/campo/reportar-avance", Body: form})
	if err != nil {
		return nil, err
	}
	var out entity.ResultadoAvance
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

type evidenciaRaw struct {
	ID           texto    `json:"id"`
	ReporteID    texto    `json:"reporte_id"`
	RenglonID    texto    `json:"renglon_id"`
	FechaReporte texto    `json:"fecha_reporte"`
	LatitudGPS   *float64 `json:"latitud_gps"`
	LongitudGPS  *float64 `json:"longitud_gps"`
	URLFoto      texto    `json:"url_foto"`
}

// Evidencias GET /campo/evidencias/{proyecto_id}?limit=. limit fuera de 1..200 se acota.
func (s *Service) Evidencias(ctx context.Context, proyectoID string, limit int) ([]entity.Evidencia, error) {
	seg, err := segmento("proyecto_id", proyectoID)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(ctx, apiclient.Request{
		Method: "GET",
		Path:   "/campo/evidencias/" + seg,
		Query:  url.Values{"limit": {strconv.Itoa(acotarLimite(limit, limiteEvidenciasPorDefecto))}},
	})
	if err != nil {
		return nil, err
	}
	raws, err := decodeLista[evidenciaRaw](resp)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Evidencia, 0, len(raws))
	for _, r := range raws {
		out = append(out, entity.Evidencia{
			ID:           string(r.ID),
			ReporteID:    string(r.ReporteID),
			RenglonID:    string(r.RenglonID),
			FechaReporte: parseFecha(r.FechaReporte),
			LatitudGPS:   r.LatitudGPS,
			LongitudGPS:  r.LongitudGPS,
			URL:          string(r.URLFoto),
		})
	}
	return out, nil
}

type fotoRaw struct {
	ID            texto `json:"id"`
	ProyectoID    texto `json:"proyecto_id"`
	URLFoto       texto `json:"url_foto"`
	Comentario    texto `json:"comentario"`
	FechaRegistro texto `json:"fecha_registro"`
}

func (r fotoRaw) entity() entity.Foto {
	return entity.Foto{
		ID:            string(r.ID),
		ProyectoID:    string(r.ProyectoID),
		URL:           string(r.URLFoto),
		Comentario:    string(r.Comentario),
		FechaRegistro: parseFecha(r.FechaRegistro),
	}
}

// ListarFotos GET /proyectos/{id}/fotos (bitácora fotográfica, más reciente primero).
func (s *Service) ListarFotos(ctx context.Context, proyectoID string) ([]entity.Foto, error) {
	seg, err := segmento("proyecto_id", proyectoID)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: "/proyectos/" + seg + "/fotos"})
	if err != nil {
		return nil, err
	}
	raws, err := decodeLista[fotoRaw](resp)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Foto, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.entity())
	}
	return out, nil
}

// SubirFoto POST /proyectos/{id}/fotos como multipart (foto y comentario opcional).
func (s *Service) SubirFoto(ctx context.Context, proyectoID string, foto entity.Archivo, comentario string) (*entity.Foto, error) {
	seg, err := segmento("proyecto_id", proyectoID)
	if err != nil {
		return nil, err
	}
	if len(foto.Datos) == 0 {
		return nil, fmt.Errorf("foto vacía: %w", domain.ErrInvalidInput)
	}
	form := apiclient.NewMultipart().File("foto", nombreArchivo(foto.Nombre, "bitacora.jpg"), foto.Datos)
	if c := strings.TrimSpace(comentario); c != "" {
		form.Field("comentario", c)
	}

	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/proyectos/" + seg + "/fotos", Body: form})
	if err != nil {
		return nil, err
	}
	var raw fotoRaw
	if err := resp.Decode(&raw); err != nil {
		return nil, err
	}
	f := raw.entity()
	f.ProyectoID = strings.TrimSpace(proyectoID)
	if f.Comentario == "" {
		f.Comentario = strings.TrimSpace(comentario)
	}
	return &f, nil
}

func nombreArchivo(nombre, def string) string {
	if n := strings.TrimSpace(nombre); n != "" {
		return n
	}
	return def
}

func acotarLimite(limit, def int) int {
	switch {
	case limit <= 0:
		return def
	case limit > limiteMaximo:
		return limiteMaximo
	}
	return limit
}
