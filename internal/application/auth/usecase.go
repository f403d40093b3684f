package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/pkg/jwt"
)

// AuthUseCase flujos de login, registro y logout. Escribe el token en el SessionStore
// que recibe en cada llamada (uno por navegador).
type AuthUseCase struct {
	api      ports.AuthAPI
	supabase ports.SupabaseAuth // nil si el portal corre sin Supabase
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(api ports.AuthAPI, supabase ports.SupabaseAuth) *AuthUseCase {
	return &AuthUseCase{api: api, supabase: supabase}
}

// apiPara liga el AuthAPI al store de la llamada cuando lo admite.
func (uc *AuthUseCase) apiPara(store ports.SessionStore) ports.AuthAPI {
	if b, ok := uc.api.(ports.AuthAPIConSesion); ok && store != nil {
		return b.ConSesion(store)
	}
	return uc.api
}

// Login envía las credenciales al backend y guarda el token bajo ambas claves.
func (uc *AuthUseCase) Login(ctx context.Context, store ports.SessionStore, in dto.LoginRequest) (*dto.LoginResponse, error) {
	out, err := uc.apiPara(store).Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return nil, fmt.Errorf("login: respuesta sin access_token: %w", domain.ErrUnauthorized)
	}
	GuardarToken(store, out.AccessToken)
	return out, nil
}

// LoginSupabase inicia sesión contra Supabase Auth y guarda su access_token.
func (uc *AuthUseCase) LoginSupabase(ctx context.Context, store ports.SessionStore, in dto.SupabaseLoginRequest) (*dto.SupabaseSession, error) {
	if uc.supabase == nil {
		return nil, domain.ErrSupabaseNoConfigurado
	}
	sess, err := uc.supabase.SignInWithPassword(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(sess.AccessToken) == "" {
		return nil, fmt.Errorf("supabase: sesión sin access_token: %w", domain.ErrUnauthorized)
	}
	GuardarToken(store, sess.AccessToken)
	return sess, nil
}

// RegisterSupabase crea la cuenta en Supabase Auth (no inicia sesión).
func (uc *AuthUseCase) RegisterSupabase(ctx context.Context, in dto.SupabaseLoginRequest) error {
	if uc.supabase == nil {
		return domain.ErrSupabaseNoConfigurado
	}
	return uc.supabase.SignUp(ctx, in.Email, in.Password, in.Nombre)
}

// Register registra la cuenta. Si el backend devuelve token, se guarda.
func (uc *AuthUseCase) Register(ctx context.Context, store ports.SessionStore, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	out, err := uc.apiPara(store).Register(ctx, in)
	if err != nil {
		return nil, err
	}
	if out.AccessToken != "" {
		GuardarToken(store, out.AccessToken)
	}
	return out, nil
}

// Logout cierra la sesión local.
func (uc *AuthUseCase) Logout(store ports.SessionStore) {
	LimpiarSesion(store)
}

// Sesion describe la sesión actual a partir del token (sin verificar firma).
func (uc *AuthUseCase) Sesion(store ports.SessionStore) dto.SesionResponse {
	tok, ok := Token(store)
	if !ok {
		return dto.SesionResponse{}
	}
	out := dto.SesionResponse{Activa: true}
	if claims, err := jwt.DecodeUnverified(tok); err == nil {
		out.Rol = claims.Rol
		out.Usuario = claims.Subject
		if out.Usuario == "" {
			out.Usuario = claims.Email
		}
	}
	return out
}
