package dto

import (
	"strings"
	"time"

	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
)

// CreateFinanzaRequest es el body de POST /finanza/add.
// Price y Type son punteros para distinguir "ausente" de cero/false.
type CreateFinanzaRequest struct {
	Name      string   `json:"name"`
	Desc      string   `json:"desc,omitempty"`
	Price     *float64 `json:"price"`
	PayMethod string   `json:"payMethod"`
	Date      string   `json:"date"`
	Type      *bool    `json:"type"`
	Tags      []string `json:"tags,omitempty"`
	User      string   `json:"user"`
}

// ParsedDate devuelve la fecha ya validada. Solo válido después de Validate.
func (r *CreateFinanzaRequest) ParsedDate() time.Time {
	t, _ := ParseDate(r.Date)
	return t
}

func (r *CreateFinanzaRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.PayMethod = strings.TrimSpace(r.PayMethod)
	r.User = strings.TrimSpace(r.User)
	switch {
	case r.Name == "":
		return httperrors.ErrValidation.WithDetail("el nombre de la finanza es requerido")
	case r.Price == nil:
		return httperrors.ErrValidation.WithDetail("el precio de la finanza es requerido")
	case r.PayMethod == "":
		return httperrors.ErrValidation.WithDetail("el metodo de pago de la finanza es requerido")
	case r.Date == "":
		return httperrors.ErrValidation.WithDetail("la fecha de la finanza es requerida")
	case r.Type == nil:
		return httperrors.ErrValidation.WithDetail("el tipo de finanza es requerido")
	case r.User == "":
		return httperrors.ErrValidation.WithDetail("el user dueño de la finanza es requerido")
	}
	if _, ok := ParseDate(r.Date); !ok {
		return httperrors.ErrValidation.WithDetail("la fecha debe ser RFC3339 o AAAA-MM-DD")
	}
	return nil
}

// UpdateFinanzaRequest es el body de PUT /finanza/update/{id}.
// Solo los campos presentes se escriben.
type UpdateFinanzaRequest struct {
	Name      *string   `json:"name,omitempty"`
	Desc      *string   `json:"desc,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	PayMethod *string   `json:"payMethod,omitempty"`
	Date      *string   `json:"date,omitempty"`
	Type      *bool     `json:"type,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}

func (r *UpdateFinanzaRequest) Validate() error {
	if r.Name == nil && r.Desc == nil && r.Price == nil && r.PayMethod == nil &&
		r.Date == nil && r.Type == nil && r.Tags == nil {
		return httperrors.ErrValidation.WithDetail("no hay campos para modificar")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return httperrors.ErrValidation.WithDetail("el nombre no puede ser vacío")
	}
	if r.PayMethod != nil && strings.TrimSpace(*r.PayMethod) == "" {
		return httperrors.ErrValidation.WithDetail("el metodo de pago no puede ser vacío")
	}
	if r.Date != nil {
		if _, ok := ParseDate(*r.Date); !ok {
			return httperrors.ErrValidation.WithDetail("la fecha debe ser RFC3339 o AAAA-MM-DD")
		}
	}
	return nil
}

// Requests de updates con alcance de un solo campo. Cada uno sobreescribe
// únicamente el campo nombrado.

type UpdateFinanzaDescRequest struct {
	Desc string `json:"desc"`
}

type UpdateFinanzaPriceRequest struct {
	Price *float64 `json:"price"`
}

func (r *UpdateFinanzaPriceRequest) Validate() error {
	if r.Price == nil {
		return httperrors.ErrValidation.WithDetail("el precio es requerido")
	}
	return nil
}

type UpdateFinanzaPayMethodRequest struct {
	PayMethod string `json:"payMethod"`
}

func (r *UpdateFinanzaPayMethodRequest) Validate() error {
	r.PayMethod = strings.TrimSpace(r.PayMethod)
	if r.PayMethod == "" {
		return httperrors.ErrValidation.WithDetail("el metodo de pago es requerido")
	}
	return nil
}

type UpdateFinanzaDateRequest struct {
	Date string `json:"date"`
}

func (r *UpdateFinanzaDateRequest) Validate() error {
	if _, ok := ParseDate(r.Date); !ok {
		return httperrors.ErrValidation.WithDetail("la fecha debe ser RFC3339 o AAAA-MM-DD")
	}
	return nil
}

type UpdateFinanzaTypeRequest struct {
	Type *bool `json:"type"`
}

func (r *UpdateFinanzaTypeRequest) Validate() error {
	if r.Type == nil {
		return httperrors.ErrValidation.WithDetail("el tipo es requerido")
	}
	return nil
}

type UpdateFinanzaTagsRequest struct {
	Tags []string `json:"tags"`
}

// FinanzaResponse es la vista de una finanza con tags (solo nombre) y dueño
// (name/email) dereferenciados.
type FinanzaResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Desc      string          `json:"desc,omitempty"`
	Price     float64         `json:"price"`
	PayMethod string          `json:"payMethod"`
	Date      time.Time       `json:"date"`
	Type      bool            `json:"type"`
	Tags      []RefResumen    `json:"tags"`
	User      *UsuarioResumen `json:"user,omitempty"`
}

// FinanzaCreatedResponse es el data de 201 en /finanza/add.
type FinanzaCreatedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc,omitempty"`
	Price     float64   `json:"price"`
	PayMethod string    `json:"payMethod"`
	Date      time.Time `json:"date"`
	Type      bool      `json:"type"`
	Tags      []string  `json:"tags"`
	User      string    `json:"user"`
}
