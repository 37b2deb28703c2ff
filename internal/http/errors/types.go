// Package errors define la taxonomía de errores de la API y su mapeo a HTTP.
//
// Todas las capas traducen fallas internas a un *AppError antes de cruzar el
// borde del service; el cliente nunca ve errores crudos del store.
package errors

import (
	"fmt"
	"net/http"
)

// AppError es la estructura estándar para errores de la aplicación.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	HTTPStatus int    `json:"-"` // No se serializa, decide el status de la respuesta
	Err        error  `json:"-"` // Causa original, solo para logs
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap permite acceder al error original.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail agrega detalle al error (útil para validaciones).
// Devuelve una COPIA para no mutar las variables globales base.
func (e *AppError) WithDetail(detail string) *AppError {
	newErr := *e
	newErr.Detail = detail
	return &newErr
}

// WithCause agrega la causa original. Devuelve una COPIA.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// FromError convierte un error genérico en *AppError.
// Si no lo es, devuelve un error de store genérico conservando la causa:
// cualquier falla sin clasificar al llegar acá es un problema interno.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrStore.WithCause(err)
}

// =================================================================================
// ERRORES PREDEFINIDOS
// =================================================================================

var (
	// 400 — campo requerido faltante o malformado.
	ErrValidation = &AppError{
		Code:       "VALIDATION",
		Message:    "La solicitud contiene campos faltantes o inválidos.",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "El cuerpo de la solicitud no es un JSON válido.",
		HTTPStatus: http.StatusBadRequest,
	}

	// 401 — login fallido. Un solo error sin diferenciar si falló el email o
	// la contraseña, para no filtrar cuál de los dos fue.
	ErrInvalidCredentials = &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "Correo electrónico o contraseña incorrectos.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenMissing = &AppError{
		Code:       "TOKEN_MISSING",
		Message:    "Token de acceso no proporcionado.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenInvalid = &AppError{
		Code:       "TOKEN_INVALID",
		Message:    "Token de acceso inválido. Inicie sesión para obtener un token válido.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenExpired = &AppError{
		Code:       "TOKEN_EXPIRED",
		Message:    "El token de acceso expiró. Inicie sesión nuevamente.",
		HTTPStatus: http.StatusUnauthorized,
	}

	// 404 — ningún documento para el id dado.
	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "No se pudo encontrar el recurso, verifique el id.",
		HTTPStatus: http.StatusNotFound,
	}

	// 500 — falla de conectividad/persistencia en el store.
	ErrStore = &AppError{
		Code:       "STORE_ERROR",
		Message:    "Ocurrió un error interno al acceder a los datos.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
