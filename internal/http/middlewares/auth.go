package middlewares

import (
	"errors"
	"net/http"
	"strings"

	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	jwtx "github.com/dasolarter/finanzasapi/internal/jwt"
)

// RequireAuth valida Authorization: Bearer <JWT> y guarda el user id en el
// contexto. Es la única puerta de autorización: se aplica uniformemente a
// toda ruta protegida; las rutas públicas (registro, login) simplemente no
// pasan por acá.
func RequireAuth(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing bearer token"`)
				httperrors.WriteError(w, httperrors.ErrTokenMissing)
				return
			}

			uid, err := issuer.Verify(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				switch {
				case errors.Is(err, jwtx.ErrTokenExpired):
					httperrors.WriteError(w, httperrors.ErrTokenExpired)
				case errors.Is(err, jwtx.ErrTokenMissing):
					httperrors.WriteError(w, httperrors.ErrTokenMissing)
				default:
					httperrors.WriteError(w, httperrors.ErrTokenInvalid)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}

// bearerToken extrae el token del header Authorization. Acepta el esquema
// "Bearer <token>" y, como el cliente original, el token pelado sin esquema.
func bearerToken(r *http.Request) string {
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return strings.TrimSpace(ah[len("Bearer "):])
	}
	return ah
}
