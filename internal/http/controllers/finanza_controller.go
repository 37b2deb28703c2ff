package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	svc "github.com/dasolarter/finanzasapi/internal/http/services"
)

// FinanzaController maneja las rutas /finanza/*.
type FinanzaController struct {
	service svc.FinanzaService
}

// NewFinanzaController crea una nueva instancia del controller.
func NewFinanzaController(service svc.FinanzaService) *FinanzaController {
	return &FinanzaController{service: service}
}

// Register registra las rutas del recurso (todas protegidas).
func (c *FinanzaController) Register(r chi.Router) {
	r.Post("/finanza/add", c.add)
	r.Get("/finanza/read", c.readAll)
	r.Get("/finanza/read/{id}", c.readByID)
	r.Put("/finanza/update/{id}", c.update)
	r.Put("/finanza/update-desc/{id}", c.updateDesc)
	r.Put("/finanza/update-price/{id}", c.updatePrice)
	r.Put("/finanza/update-pay-method/{id}", c.updatePayMethod)
	r.Put("/finanza/update-date/{id}", c.updateDate)
	r.Put("/finanza/update-type/{id}", c.updateType)
	r.Put("/finanza/update-tags/{id}", c.updateTags)
	r.Delete("/finanza/delete/{id}", c.delete)
}

func (c *FinanzaController) add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFinanzaRequest
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
	writeCreated(w, "Se creó la finanza", result)
}

func (c *FinanzaController) readAll(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *FinanzaController) readByID(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "", result)
}

func (c *FinanzaController) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaRequest
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
	writeOK(w, "Finanza modificada exitosamente", nil)
}

func (c *FinanzaController) updateDesc(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaDescRequest
	if !readJSON(w, r, &req) {
		return
	}

	if err := c.service.UpdateDesc(r.Context(), chi.URLParam(r, "id"), req.Desc); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Descripcion de finanza modificada exitosamente", nil)
}

func (c *FinanzaController) updatePrice(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaPriceRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	if err := c.service.UpdatePrice(r.Context(), chi.URLParam(r, "id"), *req.Price); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Precio de la finanza modificado exitosamente", nil)
}

func (c *FinanzaController) updatePayMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaPayMethodRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	if err := c.service.UpdatePayMethod(r.Context(), chi.URLParam(r, "id"), req.PayMethod); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Metodo de pago de la finanza modificado exitosamente", nil)
}

func (c *FinanzaController) updateDate(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaDateRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	if err := c.service.UpdateDate(r.Context(), chi.URLParam(r, "id"), req.Date); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Fecha de la finanza modificada exitosamente", nil)
}

func (c *FinanzaController) updateType(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaTypeRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, err)
		return
	}

	if err := c.service.UpdateType(r.Context(), chi.URLParam(r, "id"), *req.Type); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Tipo de la finanza modificado exitosamente", nil)
}

func (c *FinanzaController) updateTags(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinanzaTagsRequest
	if !readJSON(w, r, &req) {
		return
	}

	if err := c.service.UpdateTags(r.Context(), chi.URLParam(r, "id"), req.Tags); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Tags de la finanza modificados exitosamente", nil)
}

func (c *FinanzaController) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	writeOK(w, "Finanza eliminada exitosamente", nil)
}
