package dto

// ErrorResponse cuerpo de error HTTP del portal.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta genérica {status, message, id} del backend.
type StatusResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

// VistaResponse vista del portal que el navegador puede mostrar, con la sesión vigente.
type VistaResponse struct {
	Vista  string         `json:"vista"`
	Sesion SesionResponse `json:"sesion"`
}
