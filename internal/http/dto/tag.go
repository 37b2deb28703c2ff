package dto

import (
	"strings"
	"time"

	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
)

// CreateTagRequest es el body de POST /tag/add.
type CreateTagRequest struct {
	Name     string   `json:"name"`
	Finanzas []string `json:"finanzas,omitempty"`
	User     string   `json:"user"`
}

func (r *CreateTagRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.User = strings.TrimSpace(r.User)
	if r.Name == "" {
		return httperrors.ErrValidation.WithDetail("el nombre del tag es requerido")
	}
	if r.User == "" {
		return httperrors.ErrValidation.WithDetail("el user dueño del tag es requerido")
	}
	return nil
}

// UpdateTagRequest es el body de PUT /tag/update/{id}.
type UpdateTagRequest struct {
	Name     *string   `json:"name,omitempty"`
	Finanzas *[]string `json:"finanzas,omitempty"`
}

func (r *UpdateTagRequest) Validate() error {
	if r.Name == nil && r.Finanzas == nil {
		return httperrors.ErrValidation.WithDetail("no hay campos para modificar")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return httperrors.ErrValidation.WithDetail("el nombre no puede ser vacío")
	}
	return nil
}

// UpdateTagFinanzasRequest es el body de PUT /tag/update-finanzas/{id}.
type UpdateTagFinanzasRequest struct {
	Finanzas []string `json:"finanzas"`
}

// FinanzaEnTag es una finanza dereferenciada dentro de un tag: todos los
// campos propios, sin las back-references (tags/user).
type FinanzaEnTag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc,omitempty"`
	Price     float64   `json:"price"`
	PayMethod string    `json:"payMethod"`
	Date      time.Time `json:"date"`
	Type      bool      `json:"type"`
}

// TagResponse es la vista de un tag con finanzas y dueño dereferenciados.
type TagResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Finanzas []FinanzaEnTag  `json:"finanzas"`
	User     *UsuarioResumen `json:"user,omitempty"`
}

// TagCreatedResponse es el data de 201 en /tag/add.
type TagCreatedResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Finanzas []string `json:"finanzas"`
	User     string   `json:"user"`
}
