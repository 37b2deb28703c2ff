package middlewares

import (
	"fmt"
	"net/http"

	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/observability/logger"
)

// WithRecover captura panics y devuelve un error 500 en lugar de crashear.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log := logger.From(r.Context())
					log.Error("panic recovered",
						logger.Op("recover"),
						logger.String("panic", fmt.Sprint(rec)),
					)
					httperrors.WriteError(w, httperrors.ErrStore.WithDetail("panic recovered"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
