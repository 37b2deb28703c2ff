package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	svc "github.com/dasolarter/finanzasapi/internal/http/services"
)

// TagController maneja las rutas /tag/*.
type TagController struct {
	service svc.TagService
}

// NewTagController crea una nueva instancia del controller.
func NewTagController(service svc.TagService) *TagController {
	return &TagController{service: service}
}

// Register registra las rutas del recurso (todas protegidas).
func (c *TagController) Register(r chi.Router) {
	r.Post("/tag/add", c.add)
	r.Get("/tag/read", c.readAll)
	r.Get("/tag/read/{id}", c.readByID)
	r.Put("/tag/update/{id}", c.update)
	r.Put("/tag/update-finanzas/{id}", c.updateFinanzas)
	r.Delete("/tag/delete/{id}", c.delete)
}

func (c *TagController) add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTagRequest
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
	writeCreated(w, "Se creó el tag", result)
}

func (c *TagController) readAll(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *TagController) readByID(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *TagController) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTagRequest
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
	writeOK(w, "Tag modificado exitosamente", nil)
}

func (c *TagController) updateFinanzas(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTagFinanzasRequest
	if !readJSON(w, r, &req) {
		return
	}

	if err := c.service.UpdateFinanzas(r.Context(), chi.URLParam(r, "id"), req.Finanzas); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Tag modificado exitosamente", nil)
}

func (c *TagController) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Tag eliminado exitosamente", nil)
}
