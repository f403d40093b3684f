package ports

import (
	"context"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
)

// AuthAPI endpoints de autenticación del backend REST.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error)
}

// AuthAPIConSesion AuthAPI que puede ligarse al SessionStore del navegador, para que
// un 401 de login o registro también limpie esa sesión.
type AuthAPIConSesion interface {
	ConSesion(store SessionStore) AuthAPI
}

// SupabaseAuth autenticación directa contra Supabase Auth.
type SupabaseAuth interface {
	SignInWithPassword(ctx context.Context, email, password string) (*dto.SupabaseSession, error)
	SignUp(ctx context.Context, email, password, nombre string) error
}
