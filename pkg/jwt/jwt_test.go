package jwt_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/softcon-wm/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestDecodeUnverified_TokenFirmado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "jperez", "supervisor", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, "supervisor", claims.Rol)
	assert.Equal(t, "jperez", claims.Subject)
}

func TestDecodeUnverified_IgnoraFirmaYExpiracion(t *testing.T) {
	// Token expirado y firmado con otro secreto: se decodifica igual.
	tok, err := pkgjwt.Generate("otro-secret", "ana", "admin", -10)
	require.NoError(t, err)

	claims, err := pkgjwt.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Rol)
}

func TestDecodeUnverified_SoloPayload(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"x","rol":"bodeguero"}`))

	claims, err := pkgjwt.DecodeUnverified("cabecera." + payload + ".firma")
	require.NoError(t, err)
	assert.Equal(t, "bodeguero", claims.Rol)

	// Con relleno '=' también es válido.
	padded := base64.URLEncoding.EncodeToString([]byte(`{"rol":"trabajador"}`))
	claims, err = pkgjwt.DecodeUnverified("h." + padded + ".s")
	require.NoError(t, err)
	assert.Equal(t, "trabajador", claims.Rol)
}

func TestDecodeUnverified_SinRol(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"x"}`))
	claims, err := pkgjwt.DecodeUnverified("h." + payload + ".s")
	require.NoError(t, err)
	assert.Empty(t, claims.Rol)
}

func TestDecodeUnverified_Malformado(t *testing.T) {
	casos := map[string]string{
		"sin puntos":      "tokeninvalido",
		"payload vacío":   "a..b",
		"base64 inválido": "a.@@@.b",
		"json inválido":   "a." + base64.RawURLEncoding.EncodeToString([]byte("no-json")) + ".b",
		"json no objeto":  "a." + base64.RawURLEncoding.EncodeToString([]byte(`[1,2]`)) + ".b",
	}
	for nombre, tok := range casos {
		t.Run(nombre, func(t *testing.T) {
			claims, err := pkgjwt.DecodeUnverified(tok)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
		})
	}
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "x", "admin", 60)
	assert.Error(t, err)
}
