// Package jwt decodifica el token de sesión emitido por el backend (o por Supabase Auth).
//
// El portal NO verifica la firma: el payload decodificado solo sirve para decidir
// qué rutas mostrar. La autorización real la aplica el backend en cada endpoint.
package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed token sin segmento de payload decodificable.
var ErrMalformed = errors.New("jwt: token malformado")

// Claims payload relevante del token. El backend firma {"sub": username, "rol": rol}.
type Claims struct {
	jwt.RegisteredClaims
	Rol   string `json:"rol"`
	Email string `json:"email,omitempty"`
}

// segmentParser acepta base64url con o sin relleno, igual que atob en el navegador.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeUnverified decodifica el segmento central (payload) sin validar firma ni expiración.
// El encabezado y la firma se ignoran: basta con que exista un segundo segmento JSON.
func DecodeUnverified(token string) (*Claims, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, ErrMalformed
	}
	raw, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &claims, nil
}

// Generate firma un token HS256 con sub y rol (fixtures de tests y tokens de desarrollo).
func Generate(secret, subject, rol string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Rol: rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
