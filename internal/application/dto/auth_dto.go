package dto

// LoginRequest credenciales para POST /auth/login (formulario username/password).
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse respuesta del backend con el token bearer.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterRequest cuerpo JSON de POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse el backend deja al usuario pendiente de aprobación.
type RegisterResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
}

// SupabaseLoginRequest credenciales de Supabase Auth (email + password).
type SupabaseLoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Nombre   string `json:"nombre,omitempty" form:"nombre"`
}

// SupabaseSession sesión emitida por Supabase Auth (GoTrue).
type SupabaseSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SesionResponse estado de la sesión visto por el portal.
type SesionResponse struct {
	Activa  bool   `json:"activa"`
	Rol     string `json:"rol,omitempty"`
	Usuario string `json:"usuario,omitempty"`
}

// AsignarRolRequest cuerpo de POST /auth/admin/users/{id}/role.
type AsignarRolRequest struct {
	Rol string `json:"rol"`
}

// ActualizarActivoRequest cuerpo de POST /auth/admin/users/{id}/active.
type ActualizarActivoRequest struct {
	Activo bool `json:"is_active"`
}
