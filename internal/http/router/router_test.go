package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/dasolarter/finanzasapi/internal/http/controllers"
	svc "github.com/dasolarter/finanzasapi/internal/http/services"
	jwtx "github.com/dasolarter/finanzasapi/internal/jwt"
	"github.com/dasolarter/finanzasapi/internal/security/password"
	"github.com/dasolarter/finanzasapi/internal/store/storetest"
)

var testHash = password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	st := storetest.New()
	iss, err := jwtx.NewIssuer("secreto-de-test", 24*time.Hour)
	require.NoError(t, err)

	usuarios := st.Usuarios()
	tags := st.Tags()
	finanzas := st.Finanzas()

	usuarioSvc := svc.NewUsuarioService(svc.UsuarioDeps{
		Usuarios: usuarios, Tags: tags, Finanzas: finanzas,
		Issuer: iss, Hash: testHash,
	})
	tagSvc := svc.NewTagService(svc.TagDeps{Tags: tags, Usuarios: usuarios, Finanzas: finanzas})
	finanzaSvc := svc.NewFinanzaService(svc.FinanzaDeps{Finanzas: finanzas, Usuarios: usuarios, Tags: tags})

	return New(Deps{
		Usuarios:           controllers.NewUsuarioController(usuarioSvc),
		Tags:               controllers.NewTagController(tagSvc),
		Finanzas:           controllers.NewFinanzaController(finanzaSvc),
		Issuer:             iss,
		CORSAllowedOrigins: []string{"*"},
		MetricsRegistry:    prometheus.NewRegistry(),
	})
}

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec.Code, env
}

// Flujo completo: registro, login, alta de finanza y lectura del usuario con
// la referencia poblada.
func TestFlujoCompleto(t *testing.T) {
	h := newTestRouter(t)

	// registro (público)
	status, env := doJSON(t, h, http.MethodPost, "/usuario/add", "", map[string]any{
		"name":  "Ana",
		"email": "ana@mail.com",
		"pss":   "super-secreta",
	})
	require.Equal(t, http.StatusCreated, status)
	require.False(t, env.Error)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	// login (público)
	status, env = doJSON(t, h, http.MethodPost, "/usuario/login", "", map[string]any{
		"email": "ana@mail.com",
		"pss":   "super-secreta",
	})
	require.Equal(t, http.StatusOK, status)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	// alta de finanza (protegido)
	status, env = doJSON(t, h, http.MethodPost, "/finanza/add", login.Token, map[string]any{
		"name":      "Supermercado",
		"desc":      "compra semanal",
		"price":     1520.50,
		"payMethod": "debito",
		"date":      "2026-08-20",
		"type":      false,
		"user":      created.ID,
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", env.Message)

	var finanza struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &finanza))

	// lectura del usuario: la finanza aparece referenciada por nombre
	status, env = doJSON(t, h, http.MethodGet, "/usuario/read/"+created.ID, login.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var usuario struct {
		Finanzas []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"finanzas"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &usuario))
	require.Len(t, usuario.Finanzas, 1)
	require.Equal(t, finanza.ID, usuario.Finanzas[0].ID)
	require.Equal(t, "Supermercado", usuario.Finanzas[0].Name)
}

func TestRutasProtegidasSinToken(t *testing.T) {
	h := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/usuario/read"},
		{http.MethodGet, "/tag/read"},
		{http.MethodGet, "/finanza/read"},
		{http.MethodDelete, "/usuario/delete/aaaaaaaaaaaaaaaaaaaaaaaa"},
	} {
		status, env := doJSON(t, h, tc.method, tc.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, status, "%s %s", tc.method, tc.path)
		require.True(t, env.Error)
		require.Equal(t, "TOKEN_MISSING", env.Code)
	}
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	h := newTestRouter(t)

	status, env := doJSON(t, h, http.MethodPost, "/usuario/login", "", map[string]any{
		"email": "nadie@mail.com",
		"pss":   "lo-que-sea",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "INVALID_CREDENTIALS", env.Code)
}

func TestRegistroInvalido(t *testing.T) {
	h := newTestRouter(t)

	status, env := doJSON(t, h, http.MethodPost, "/usuario/add", "", map[string]any{
		"name": "Ana",
		// sin email ni pss
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION", env.Code)
}

func TestRutaInexistente(t *testing.T) {
	h := newTestRouter(t)

	status, env := doJSON(t, h, http.MethodGet, "/no-existe", "", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.True(t, env.Error)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
