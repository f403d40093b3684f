package supabase_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/supabase"
	"github.com/jhoicas/softcon-wm/pkg/config"
)

const anonKey = "anon-key-de-prueba"

func nuevoCliente(t *testing.T, h http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := supabase.New(config.SupabaseConfig{URL: srv.URL, AnonKey: anonKey}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestNew_SinConfiguracionEsError(t *testing.T) {
	_, err := supabase.New(config.SupabaseConfig{URL: "https://x.supabase.co"}, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSupabaseNoConfigurado)
	assert.Contains(t, err.Error(), "SUPABASE_ANON_KEY")
}

func TestSignInWithPassword(t *testing.T) {
	c := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, anonKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer "+anonKey, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@softcon.gt", body["email"])

		_, _ = io.WriteString(w, `{"access_token":"sb-jwt","refresh_token":"r","expires_in":3600,"user":{"id":"u1","email":"ana@softcon.gt"}}`)
	})

	sess, err := c.SignInWithPassword(context.Background(), " ana@softcon.gt ", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "sb-jwt", sess.AccessToken)
	assert.Equal(t, "u1", sess.User.ID)
}

func TestSignInWithPassword_CredencialesInvalidas(t *testing.T) {
	c := nuevoCliente(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)
	})

	_, err := c.SignInWithPassword(context.Background(), "ana@softcon.gt", "mala")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apiclient.StatusCode(err))
	assert.Equal(t, "Invalid login credentials", apiclient.UserMessage(err, "x"))
}

func TestSignUp_EnviaNombreEnMetadata(t *testing.T) {
	c := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.gt","password":"x1","data":{"full_name":"Ana López"}}`, string(raw))
		_, _ = io.WriteString(w, `{"id":"u2"}`)
	})

	require.NoError(t, c.SignUp(context.Background(), "a@b.gt", "x1", "Ana López"))
	assert.ErrorIs(t, c.SignUp(context.Background(), "", "x1", ""), domain.ErrInvalidInput)
}

func TestListarProyectos_OrdenadosPorCreacion(t *testing.T) {
	c := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/proyectos", r.URL.Path)
		assert.Equal(t, "creado_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		_, _ = io.WriteString(w, `[{"id":"p1","nombre_proyecto":"Torre Norte","departamento":null,"presupuesto_total":250000,"creado_at":"2024-03-10T15:04:05.123+00:00"},
			{"id":"p2","nombre_proyecto":"Bodega","presupuesto_total":null,"creado_at":"2024-01-02T08:00:00"}]`)
	})

	ps, err := c.ListarProyectos(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Torre Norte", ps[0].Nombre)
	assert.Equal(t, "250000", ps[0].PresupuestoTotal.String())
	require.NotNil(t, ps[0].CreadoEn)
	assert.Equal(t, time.March, ps[0].CreadoEn.Month())
	require.NotNil(t, ps[1].CreadoEn)
	assert.True(t, ps[1].PresupuestoTotal.IsZero())
}

func TestUsuariosActivos_FiltroUltimaConexion(t *testing.T) {
	desde := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/usuarios", r.URL.Path)
		assert.Equal(t, "gte.2024-05-01T12:00:00Z", r.URL.Query().Get("ultima_conexion"))
		assert.True(t, strings.Contains(r.URL.Query().Get("select"), "ultima_conexion"))
		_, _ = io.WriteString(w, `[{"id":"u1","username":"jperez","email":"j@x.gt","nombre":null,"telefono":"5555","rol":"supervisor","ultima_conexion":"2024-05-01T12:03:00+00:00"}]`)
	})

	us, err := c.UsuariosActivos(context.Background(), desde)
	require.NoError(t, err)
	require.Len(t, us, 1)
	assert.Equal(t, "supervisor", us[0].Rol)
	assert.Equal(t, "5555", us[0].Telefono)
	require.NotNil(t, us[0].UltimaConexion)
	assert.True(t, us[0].UltimaConexion.After(desde))
}

func TestUsuariosActivos_401NoAfectaNada(t *testing.T) {
	c := nuevoCliente(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid API key"}`)
	})

	_, err := c.UsuariosActivos(context.Background(), time.Now())
	require.Error(t, err)
	assert.Equal(t, "Invalid API key", apiclient.UserMessage(err, "x"))
}
