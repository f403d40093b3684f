package backend

import (
	"context"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// Login POST /auth/login como formulario urlencoded (password grant de OAuth2).
// Los campos vacíos viajan como cadena vacía, nunca se omiten.
func (s *Service) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	resp, err := s.do(ctx, apiclient.Request{
		Method: "POST",
		Path:   "/auth/login",
		Body: apiclient.Form{
			{Key: "username", Value: username},
			{Key: "password", Value: password},
		},
	})
	if err != nil {
		return nil, err
	}
	var out dto.LoginResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register POST /auth/register con cuerpo JSON. El usuario queda pendiente de aprobación.
func (s *Service) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/auth/register", Body: in})
	if err != nil {
		return nil, err
	}
	var out dto.RegisterResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
