// Package dto define los tipos de request/response por operación.
//
// Cada endpoint tiene su schema explícito validado en el borde HTTP, antes de
// entrar a la capa de services; nada de bodies dinámicos con chequeos ad hoc.
package dto

import (
	"strings"
	"time"
)

// Envelope es la respuesta JSON estándar de la API.
// error=false siempre en éxito; los errores salen por el paquete de errores.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RefResumen es el resumen mínimo de un documento referenciado (populate con
// proyección de solo nombre).
type RefResumen struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UsuarioResumen es el resumen de un dueño referenciado (name/email).
type UsuarioResumen struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// dateLayouts son los formatos de fecha aceptados en requests.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate acepta RFC3339 o fecha simple AAAA-MM-DD.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
