package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse es el envelope JSON que ve el cliente ante una falla.
// Siempre lleva el flag error=true y un mensaje legible; nunca un stack trace
// ni el error interno del store.
type errorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// WriteError serializa err como envelope JSON con el status que corresponda.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	resp := errorResponse{
		Error:   true,
		Code:    appErr.Code,
		Message: appErr.Message,
		Detail:  appErr.Detail,
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(resp)
}
