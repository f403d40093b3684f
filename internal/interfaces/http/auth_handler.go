package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/application/dto"
)

// AuthHandler login, registro y estado de sesión del navegador.
// El token nunca viaja al navegador en el cuerpo: solo en cookies HttpOnly.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión contra el backend
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.SesionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	store := GetStore(c)
	if _, err := h.uc.Login(c.UserContext(), store, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(h.uc.Sesion(store))
}

// Register godoc
// @Summary      Registrar cuenta (queda pendiente de aprobación)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Register(c.UserContext(), GetStore(c), in)
	if err != nil {
		return responderError(c, err)
	}
	// el token, si vino, ya quedó en la cookie
	out.AccessToken = ""
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LoginSupabase godoc
// @Summary      Iniciar sesión con Supabase Auth
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupabaseLoginRequest  true  "email, password"
// @Success      200   {object}  dto.SesionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/supabase/login [post]
func (h *AuthHandler) LoginSupabase(c *fiber.Ctx) error {
	var in dto.SupabaseLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	store := GetStore(c)
	if _, err := h.uc.LoginSupabase(c.UserContext(), store, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(h.uc.Sesion(store))
}

// RegisterSupabase godoc
// @Summary      Crear cuenta en Supabase Auth
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupabaseLoginRequest  true  "email, password, nombre"
// @Success      201   {object}  dto.StatusResponse
// @Router       /api/auth/supabase/register [post]
func (h *AuthHandler) RegisterSupabase(c *fiber.Ctx) error {
	var in dto.SupabaseLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.RegisterSupabase(c.UserContext(), in); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "ok", Message: "revise su correo para confirmar la cuenta"})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetStore(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Sesion godoc
// @Summary      Estado de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/auth/sesion [get]
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	return c.JSON(h.uc.Sesion(GetStore(c)))
}
