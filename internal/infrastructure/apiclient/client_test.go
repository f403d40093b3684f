package apiclient_test

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/session"
)

// capturada petición recibida por el backend falso.
type capturada struct {
	Method      string
	Path        string
	Query       url.Values
	Auth        string
	ContentType string
	RequestID   string
	Escapado    string
	Body        string
}

func backendFalso(t *testing.T, status int, respBody string) (*httptest.Server, *capturada) {
	t.Helper()
	got := &capturada{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*got = capturada{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.Query(),
			Auth:        r.Header.Get("Authorization"),
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-Id"),
			Escapado:    r.URL.EscapedPath(),
			Body:        string(b),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func nuevoCliente(t *testing.T, baseURL string, store *session.MemoryStore, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(baseURL, store, opts...)
	require.NoError(t, err)
	return c
}

func TestDo_AgregaBearerSiHayToken(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)
	store := session.NewMemoryStore()
	auth.GuardarToken(store, "abc")

	_, err := nuevoCliente(t, srv.URL, store).Do(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/proyectos"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got.Auth)
	assert.NotEmpty(t, got.RequestID)
}

func TestDo_UsaClaveLegadaUserToken(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)
	store := session.NewMemoryStore()
	store.Set(auth.KeyUserToken, "legado")

	_, err := nuevoCliente(t, srv.URL, store).Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer legado", got.Auth)
}

func TestDo_SinTokenNoAgregaAuthorization(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.NoError(t, err)
	assert.Empty(t, got.Auth)
}

func TestDo_NoSobrescribeAuthorizationExplicito(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)
	store := session.NewMemoryStore()
	auth.GuardarToken(store, "abc")

	_, err := nuevoCliente(t, srv.URL, store).Do(context.Background(), apiclient.Request{
		Path:   "/proyectos",
		Header: http.Header{"Authorization": []string{"Bearer otro"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer otro", got.Auth)
}

func TestDo_401LimpiaAmbasClaves(t *testing.T) {
	srv, _ := backendFalso(t, http.StatusUnauthorized, `{"detail":"Token expirado"}`)
	store := session.NewMemoryStore()
	auth.GuardarToken(store, "viejo")

	_, err := nuevoCliente(t, srv.URL, store).Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.Error(t, err)

	var he *apiclient.HTTPStatusError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusUnauthorized, he.StatusCode)
	assert.Equal(t, "Token expirado", he.Detail)
	assert.False(t, auth.HasSession(store))
	assert.Equal(t, 0, store.Len())
}

func TestDo_403NoLimpiaSesion(t *testing.T) {
	srv, _ := backendFalso(t, http.StatusForbidden, `{"detail":"Sin permisos"}`)
	store := session.NewMemoryStore()
	auth.GuardarToken(store, "vigente")

	_, err := nuevoCliente(t, srv.URL, store).Do(context.Background(), apiclient.Request{Path: "/auth/admin/users/pending"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apiclient.StatusCode(err))
	assert.True(t, auth.HasSession(store))
}

func TestDo_401NoReintenta(t *testing.T) {
	var llamadas int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&llamadas, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&llamadas))
}

func TestDo_CuerpoJSONPorDefecto(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{"message":"ok"}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   map[string]string{"username": "ana"},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", got.ContentType)
	assert.JSONEq(t, `{"username":"ana"}`, got.Body)
}

func TestDo_ContentTypeSobrescritoPorLlamador(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{
		Method: http.MethodPost,
		Path:   "/x",
		Body:   map[string]int{"a": 1},
		Header: http.Header{"Content-Type": []string{"application/vnd.softcon+json"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.softcon+json", got.ContentType)
}

func TestDo_FormularioOrdenado(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   apiclient.Form{{Key: "username", Value: "u"}, {Key: "password", Value: "p"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", got.ContentType)
	assert.Equal(t, "username=u&password=p", got.Body)
}

func TestDo_MultipartIgnoraContentTypeJSON(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)

	body := apiclient.NewMultipart().Field("comentario", "losa").File("foto", "a.jpg", []byte("JPEG"))
	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{
		Method: http.MethodPost,
		Path:   "/proyectos/1/fotos",
		Body:   body,
		Header: http.Header{"Content-Type": []string{"application/json"}},
	})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(got.ContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	assert.NotEmpty(t, params["boundary"])
	assert.Contains(t, got.Body, `name="foto"; filename="a.jpg"`)
	assert.Contains(t, got.Body, "JPEG")
}

func TestDo_QueryParams(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{
		Method: http.MethodPost,
		Path:   "/proyectos",
		Query:  url.Values{"nombre": {"Edificio X"}, "depto": {"Guatemala"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Edificio X", got.Query.Get("nombre"))
	assert.Equal(t, "Guatemala", got.Query.Get("depto"))
	assert.Empty(t, got.Body)
	assert.Empty(t, got.ContentType)
}

func TestDo_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := nuevoCliente(t, base, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.Error(t, err)
	assert.True(t, apiclient.IsNetwork(err))
	assert.Equal(t, 0, apiclient.StatusCode(err))
	assert.Equal(t, "Error de conexión", apiclient.UserMessage(err, "Error de conexión"))
}

func TestDo_DetalleDeValidacionFastAPI(t *testing.T) {
	srv, _ := backendFalso(t, http.StatusUnprocessableEntity,
		`{"detail":[{"loc":["body","monto"],"msg":"field required"},{"msg":"value is not a valid float"}]}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/x"})
	require.Error(t, err)
	assert.Equal(t, "field required; value is not a valid float", apiclient.UserMessage(err, "genérico"))
}

func TestDo_DetalleSupabase(t *testing.T) {
	srv, _ := backendFalso(t, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/auth/v1/token"})
	require.Error(t, err)
	assert.Equal(t, "Invalid login credentials", apiclient.UserMessage(err, "genérico"))
}

func TestDo_SinDetalleUsaMensajeGenerico(t *testing.T) {
	srv, _ := backendFalso(t, http.StatusInternalServerError, `<html>boom</html>`)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apiclient.StatusCode(err))
	assert.Equal(t, "No se pudo completar la operación", apiclient.UserMessage(err, "No se pudo completar la operación"))
}

func TestDo_PathInvalido(t *testing.T) {
	c := nuevoCliente(t, "http://localhost:8000", session.NewMemoryStore())
	_, err := c.Do(context.Background(), apiclient.Request{Path: "proyectos"})
	require.Error(t, err)
	assert.False(t, apiclient.IsNetwork(err))
}

func TestDo_HeaderFijoYWithStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		_, _ = io.WriteString(w, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	base, err := apiclient.New(srv.URL, nil, apiclient.WithHeader("apikey", "anon"))
	require.NoError(t, err)
	store := session.NewMemoryStore()
	auth.GuardarToken(store, "por-navegador")

	resp, err := base.WithStore(store).Do(context.Background(), apiclient.Request{Path: "/rest/v1/proyectos"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer por-navegador", string(resp.Body))

	resp, err = base.Do(context.Background(), apiclient.Request{Path: "/rest/v1/proyectos"})
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(resp.Body)))
}

func TestDo_ConservaPathDelBaseURL(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)

	_, err := nuevoCliente(t, srv.URL+"/api/", session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/proyectos/7"})
	require.NoError(t, err)
	assert.Equal(t, "/api/proyectos/7", got.Path)
}

func TestNew_BaseURLPorDefecto(t *testing.T) {
	c, err := apiclient.New("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", c.BaseURL())

	c, err = apiclient.New("api.softcon.test/", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://api.softcon.test", c.BaseURL())
}

func TestResponse_Decode(t *testing.T) {
	r := &apiclient.Response{Body: []byte(`{"status":"ok"}`)}
	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, r.Decode(&out))
	assert.Equal(t, "ok", out.Status)

	require.NoError(t, (&apiclient.Response{}).Decode(&out))
	require.Error(t, (&apiclient.Response{Body: []byte("no-json")}).Decode(&out))
}

type observacion struct {
	method string
	status int
}

type observadorFalso struct{ vistas []observacion }

func (o *observadorFalso) ObservarBackend(method string, status int, _ time.Duration) {
	o.vistas = append(o.vistas, observacion{method: method, status: status})
}

func TestDo_ObserverRecibeEstado(t *testing.T) {
	srv, _ := backendFalso(t, http.StatusForbidden, `{"detail":"no"}`)
	obs := &observadorFalso{}
	c := nuevoCliente(t, srv.URL, session.NewMemoryStore(), apiclient.WithObserver(obs))

	_, err := c.Do(context.Background(), apiclient.Request{Method: "DELETE", Path: "/x"})
	require.Error(t, err)

	require.Len(t, obs.vistas, 1)
	assert.Equal(t, observacion{method: "DELETE", status: http.StatusForbidden}, obs.vistas[0])
}

func TestDo_ObserverErrorDeRedEsCero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()
	obs := &observadorFalso{}

	_, err := nuevoCliente(t, base, session.NewMemoryStore(), apiclient.WithObserver(obs)).
		Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.Error(t, err)
	require.Len(t, obs.vistas, 1)
	assert.Equal(t, observacion{method: "GET", status: 0}, obs.vistas[0])
}

func TestDo_ReenviaRequestIDDelContexto(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)
	c := nuevoCliente(t, srv.URL, session.NewMemoryStore())

	ctx := apiclient.ContextWithRequestID(context.Background(), "2HbRk1Yv8zQ")
	_, err := c.Do(ctx, apiclient.Request{Path: "/proyectos"})
	require.NoError(t, err)
	assert.Equal(t, "2HbRk1Yv8zQ", got.RequestID)

	_, err = c.Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.NoError(t, err)
	assert.Len(t, got.RequestID, 36, "sin id en el contexto se genera un uuid")
}

func TestDo_PathEscapadoNoSeReescapa(t *testing.T) {
	srv, got := backendFalso(t, http.StatusOK, `{}`)
	c := nuevoCliente(t, srv.URL+"/api", session.NewMemoryStore())

	_, err := c.Do(context.Background(), apiclient.Request{Path: "/proyectos/" + url.PathEscape("obra 1/b")})
	require.NoError(t, err)
	assert.Equal(t, "/api/proyectos/obra%201%2Fb", got.Escapado)
	assert.Equal(t, "/api/proyectos/obra 1/b", got.Path)

	_, err = c.Do(context.Background(), apiclient.Request{Path: "/proyectos/%zz"})
	require.Error(t, err)
	assert.False(t, apiclient.IsNetwork(err))
}

func TestDo_401ConCuerpoCortadoIgualLimpiaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"de`)
	}))
	t.Cleanup(srv.Close)
	store := session.NewMemoryStore()
	auth.GuardarToken(store, "vencido")

	_, err := nuevoCliente(t, srv.URL, store).Do(context.Background(), apiclient.Request{Path: "/proyectos"})
	require.Error(t, err)
	assert.False(t, apiclient.IsNetwork(err))
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
	assert.False(t, auth.HasSession(store))
}

func TestDo_CuerpoDemasiadoGrande(t *testing.T) {
	grande := strings.Repeat("x", 9<<20)
	srv, _ := backendFalso(t, http.StatusOK, grande)

	_, err := nuevoCliente(t, srv.URL, session.NewMemoryStore()).Do(context.Background(), apiclient.Request{Path: "/importar/maestro"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrRespuestaDemasiadoGrande)
	assert.False(t, apiclient.IsNetwork(err))
}
