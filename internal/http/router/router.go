package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dasolarter/finanzasapi/internal/http/controllers"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/http/middlewares"
	jwtx "github.com/dasolarter/finanzasapi/internal/jwt"
	"github.com/dasolarter/finanzasapi/internal/observability/logger"
	"github.com/dasolarter/finanzasapi/internal/store"
)

// Deps agrupa todo lo que el router necesita para armar el árbol de rutas.
type Deps struct {
	Usuarios *controllers.UsuarioController
	Tags     *controllers.TagController
	Finanzas *controllers.FinanzaController

	Issuer *jwtx.Issuer
	Store  *store.Store

	CORSAllowedOrigins []string
	MetricsRegistry    prometheus.Registerer
}

// New arma el router completo: middlewares globales, rutas públicas
// (registro y login), el resto de recursos detrás del gate de auth,
// y los endpoints operativos /healthz y /metrics.
func New(d Deps) http.Handler {
	metricsHandler, err := middlewares.RegisterMetrics(d.MetricsRegistry)
	if err != nil {
		logger.L().Warn("no se pudieron registrar las métricas", logger.Err(err))
	}

	r := chi.NewRouter()

	r.Use(middlewares.WithRequestID())
	r.Use(middlewares.WithLogging())
	r.Use(middlewares.WithRecover())
	r.Use(middlewares.WithMetrics())
	r.Use(middlewares.WithCORS(d.CORSAllowedOrigins))

	// Rutas públicas: alta de usuario y login.
	r.Group(func(pub chi.Router) {
		d.Usuarios.RegisterPublic(pub)
	})

	// Todo lo demás exige un access token válido.
	r.Group(func(priv chi.Router) {
		priv.Use(middlewares.RequireAuth(d.Issuer))
		d.Usuarios.Register(priv)
		d.Tags.Register(priv)
		d.Finanzas.Register(priv)
	})

	r.Get("/healthz", healthHandler(d.Store))

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("ruta no encontrada"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("método no permitido para esta ruta"))
	})

	return r
}

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if st != nil {
			if err := st.Ping(r.Context()); err != nil {
				logger.From(r.Context()).Warn("healthcheck: mongo no responde", logger.Err(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
