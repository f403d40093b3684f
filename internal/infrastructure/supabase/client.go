// Package supabase acceso directo a Supabase: Auth (GoTrue) para iniciar sesión y
// registrarse, y PostgREST para las tablas proyectos y usuarios.
package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
	"github.com/jhoicas/softcon-wm/pkg/config"
)

var (
	_ ports.SupabaseAuth = (*Client)(nil)
	_ ports.Directorio   = (*Client)(nil)
)

const columnasUsuarioActivo = "id,username,email,nombre,telefono,rol,ultima_conexion"

// Client cliente Supabase. Las peticiones van con la anon key (apikey y bearer) y sin
// SessionStore: un 401 de Supabase nunca borra la sesión del portal.
type Client struct {
	api *apiclient.Client
	log zerolog.Logger
}

// New valida el par URL/anon key. Sin él no hay cliente: quien lo necesite debe
// tratar el error como fatal.
func New(cfg config.SupabaseConfig, log zerolog.Logger, opts ...apiclient.Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSupabaseNoConfigurado, err)
	}
	key := strings.TrimSpace(cfg.AnonKey)
	opts = append([]apiclient.Option{
		apiclient.WithHeader("apikey", key),
		apiclient.WithHeader("Authorization", "Bearer "+key),
		apiclient.WithLogger(log),
	}, opts...)
	api, err := apiclient.New(cfg.URL, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("supabase: %w", err)
	}
	return &Client{api: api, log: log}, nil
}

// SignInWithPassword POST /auth/v1/token?grant_type=password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*dto.SupabaseSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("email y password requeridos: %w", domain.ErrInvalidInput)
	}
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: "POST",
		Path:   "/auth/v1/token",
		Query:  url.Values{"grant_type": {"password"}},
		Body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return nil, err
	}
	var out dto.SupabaseSession
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp POST /auth/v1/signup; el nombre viaja en user_metadata.full_name.
func (c *Client) SignUp(ctx context.Context, email, password, nombre string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("email y password requeridos: %w", domain.ErrInvalidInput)
	}
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": strings.TrimSpace(nombre)},
	}
	_, err := c.api.Do(ctx, apiclient.Request{Method: "POST", Path: "/auth/v1/signup", Body: body})
	return err
}

type proyectoFila struct {
	ID               string          `json:"id"`
	NombreProyecto   string          `json:"nombre_proyecto"`
	Departamento     string          `json:"departamento"`
	PresupuestoTotal decimal.Decimal `json:"presupuesto_total"`
	CreadoAt         string          `json:"creado_at"`
}

// ListarProyectos tabla proyectos, más recientes primero.
func (c *Client) ListarProyectos(ctx context.Context) ([]entity.Proyecto, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: "GET",
		Path:   "/rest/v1/proyectos",
		Query:  url.Values{"select": {"*"}, "order": {"creado_at.desc"}},
	})
	if err != nil {
		return nil, err
	}
	var filas []proyectoFila
	if err := resp.Decode(&filas); err != nil {
		return nil, err
	}
	out := make([]entity.Proyecto, 0, len(filas))
	for _, f := range filas {
		out = append(out, entity.Proyecto{
			ID:               f.ID,
			Nombre:           f.NombreProyecto,
			Departamento:     f.Departamento,
			PresupuestoTotal: f.PresupuestoTotal,
			CreadoEn:         apiclient.ParseFecha(f.CreadoAt),
		})
	}
	return out, nil
}

type usuarioFila struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Nombre         string `json:"nombre"`
	Telefono       string `json:"telefono"`
	Rol            string `json:"rol"`
	UltimaConexion string `json:"ultima_conexion"`
}

// UsuariosActivos usuarios con ultima_conexion >= desde.
func (c *Client) UsuariosActivos(ctx context.Context, desde time.Time) ([]entity.Usuario, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: "GET",
		Path:   "/rest/v1/usuarios",
		Query: url.Values{
			"select":          {columnasUsuarioActivo},
			"ultima_conexion": {"gte." + desde.UTC().Format(time.RFC3339)},
		},
	})
	if err != nil {
		return nil, err
	}
	var filas []usuarioFila
	if err := resp.Decode(&filas); err != nil {
		return nil, err
	}
	out := make([]entity.Usuario, 0, len(filas))
	for _, f := range filas {
		out = append(out, entity.Usuario{
			ID:             f.ID,
			Username:       f.Username,
			Email:          f.Email,
			Nombre:         f.Nombre,
			Telefono:       f.Telefono,
			Rol:            f.Rol,
			Activo:         true,
			Aprobado:       true,
			UltimaConexion: apiclient.ParseFecha(f.UltimaConexion),
		})
	}
	return out, nil
}
