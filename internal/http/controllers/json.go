// Package controllers mapea requests HTTP a operaciones de los services.
// Decodifica y valida el body en el borde, llama al service y serializa la
// respuesta como envelope {error, message, data}.
package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
)

const maxJSONBody = 1 << 20 // 1MB

// readJSON decodifica el body JSON en dst. Valida Content-Type y limita el
// tamaño. Escribe la respuesta de error y devuelve false si el body no sirve.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
	if !strings.Contains(ct, "application/json") {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON.WithDetail("se requiere Content-Type: application/json"))
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		msg := "json inválido"
		if err == io.EOF {
			msg = "body vacío"
		}
		httperrors.WriteError(w, httperrors.ErrInvalidJSON.WithDetail(msg))
		return false
	}
	return true
}

// writeJSON serializa v con el status dado.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeCreated responde 201 con el envelope estándar.
func writeCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, dto.Envelope{Message: message, Data: data})
}

// writeOK responde 200 con el envelope estándar.
func writeOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, dto.Envelope{Message: message, Data: data})
}
