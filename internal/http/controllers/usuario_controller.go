package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	svc "github.com/dasolarter/finanzasapi/internal/http/services"
)

// UsuarioController maneja las rutas /usuario/*.
type UsuarioController struct {
	service svc.UsuarioService
}

// NewUsuarioController crea una nueva instancia del controller.
func NewUsuarioController(service svc.UsuarioService) *UsuarioController {
	return &UsuarioController{service: service}
}

// RegisterPublic registra las rutas que no pasan por el gate de auth:
// registro y login.
func (c *UsuarioController) RegisterPublic(r chi.Router) {
	r.Post("/usuario/add", c.add)
	r.Post("/usuario/login", c.login)
}

// Register registra las rutas protegidas.
func (c *UsuarioController) Register(r chi.Router) {
	r.Get("/usuario/read", c.readAll)
	r.Get("/usuario/read/{id}", c.readByID)
	r.Post("/usuario/read-post", c.readByIDPost)
	r.Put("/usuario/update/{id}", c.update)
	r.Put("/usuario/update-finanzas/{id}", c.updateFinanzas)
	r.Put("/usuario/update-tags/{id}", c.updateTags)
	r.Delete("/usuario/delete/{id}", c.delete)
}

func (c *UsuarioController) add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUsuarioRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	result, err := c.service.Create(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeCreated(w, "Se creó el usuario", result)
}

func (c *UsuarioController) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		// Body presente pero incompleto: mismo 401 genérico que cualquier
		// otra falla de credenciales.
		httperrors.WriteError(w, httperrors.ErrInvalidCredentials)
		return
	}

	result, err := c.service.Login(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.Envelope{
		Message: "Inicio de sesión exitoso",
		Data:    result,
	})
}

func (c *UsuarioController) readAll(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *UsuarioController) readByID(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *UsuarioController) readByIDPost(w http.ResponseWriter, r *http.Request) {
	var req dto.ReadUsuarioPostRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	result, err := c.service.Get(r.Context(), req.ID)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *UsuarioController) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUsuarioRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	if err := c.service.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Usuario modificado exitosamente", nil)
}

func (c *UsuarioController) updateFinanzas(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUsuarioFinanzasRequest
	if !readJSON(w, r, &req) {
		return
	}

	if err := c.service.UpdateFinanzas(r.Context(), chi.URLParam(r, "id"), req.Finanzas); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Array de finanzas modificado exitosamente", nil)
}

func (c *UsuarioController) updateTags(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUsuarioTagsRequest
	if !readJSON(w, r, &req) {
		return
	}

	if err := c.service.UpdateTags(r.Context(), chi.URLParam(r, "id"), req.Tags); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Array de tags del usuario modificado exitosamente", nil)
}

func (c *UsuarioController) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Usuario eliminado exitosamente", nil)
}
