package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

type usuarioRaw struct {
	ID         texto `json:"id"`
	Username   texto `json:"username"`
	Email      texto `json:"email"`
	Nombre     texto `json:"nombre"`
	Rol        texto `json:"rol"`
	IsActive   *bool `json:"is_active"`
	IsApproved bool  `json:"is_approved"`
	CreadoEn   texto `json:"creado_en"`
}

func (r usuarioRaw) entity() entity.Usuario {
	activo := true
	if r.IsActive != nil {
		activo = *r.IsActive
	}
	return entity.Usuario{
		ID:       string(r.ID),
		Username: string(r.Username),
		Email:    string(r.Email),
		Nombre:   string(r.Nombre),
		Rol:      string(r.Rol),
		Activo:   activo,
		Aprobado: r.IsApproved,
		CreadoEn: parseFecha(r.CreadoEn),
	}
}

// UsuariosPendientes GET /auth/admin/users/pending ({items} o arreglo).
func (s *Service) UsuariosPendientes(ctx context.Context) ([]entity.Usuario, error) {
	resp, err := s.do(ctx, apiclient.Request{Method: "GET", Path: "/auth/admin/users/pending"})
	if err != nil {
		return nil, err
	}
	raws, err := decodeLista[usuarioRaw](resp)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Usuario, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.entity())
	}
	return out, nil
}

// AprobarUsuario POST /auth/admin/users/{id}/approve.
func (s *Service) AprobarUsuario(ctx context.Context, userID string) (*dto.StatusResponse, error) {
	return s.accionUsuario(ctx, userID, "approve", nil)
}

// AsignarRol POST /auth/admin/users/{id}/role con {rol}.
func (s *Service) AsignarRol(ctx context.Context, userID, rol string) (*dto.StatusResponse, error) {
	rol = strings.ToLower(strings.TrimSpace(rol))
	if !entity.ValidRole(rol) {
		return nil, fmt.Errorf("rol %q no permitido: %w", rol, domain.ErrInvalidInput)
	}
	return s.accionUsuario(ctx, userID, "role", dto.AsignarRolRequest{Rol: rol})
}

// ActualizarActivoUsuario POST /auth/admin/users/{id}/active con {is_active}.
func (s *Service) ActualizarActivoUsuario(ctx context.Context, userID string, activo bool) (*dto.StatusResponse, error) {
	return s.accionUsuario(ctx, userID, "active", dto.ActualizarActivoRequest{Activo: activo})
}

func (s *Service) accionUsuario(ctx context.Context, userID, accion string, body any) (*dto.StatusResponse, error) {
	seg, err := segmento("user_id", userID)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(ctx, apiclient.Request{
		Method: "POST",
		Path:   "/auth/admin/users/" + seg + "/" + accion,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		dto.StatusResponse
		UserID string `json:"user_id"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = out.UserID
	}
	return &out.StatusResponse, nil
}
