package dto

import (
	"strings"

	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
)

// CreateUsuarioRequest es el body de POST /usuario/add.
type CreateUsuarioRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pss   string `json:"pss"`
	Rol   string `json:"rol,omitempty"`
}

func (r *CreateUsuarioRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Name == "" {
		return httperrors.ErrValidation.WithDetail("el nombre de la persona es requerido")
	}
	if r.Email == "" {
		return httperrors.ErrValidation.WithDetail("el email de la persona es requerido")
	}
	if r.Pss == "" {
		return httperrors.ErrValidation.WithDetail("la contraseña de la persona es requerida")
	}
	return nil
}

// LoginRequest es el body de POST /usuario/login.
type LoginRequest struct {
	Email string `json:"email"`
	Pss   string `json:"pss"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" || r.Pss == "" {
		return httperrors.ErrValidation.WithDetail("email y pss son requeridos")
	}
	return nil
}

// LoginResponse lleva el bearer token emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// ReadUsuarioPostRequest es el body de POST /usuario/read-post.
type ReadUsuarioPostRequest struct {
	ID string `json:"id"`
}

func (r *ReadUsuarioPostRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return httperrors.ErrValidation.WithDetail("el id es requerido")
	}
	return nil
}

// UpdateUsuarioRequest es el body de PUT /usuario/update/{id}.
// Solo los campos presentes se escriben; el resto del documento queda igual.
type UpdateUsuarioRequest struct {
	Name     *string   `json:"name,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Pss      *string   `json:"pss,omitempty"`
	Finanzas *[]string `json:"finanzas,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

func (r *UpdateUsuarioRequest) Validate() error {
	if r.Name == nil && r.Email == nil && r.Pss == nil && r.Finanzas == nil && r.Tags == nil {
		return httperrors.ErrValidation.WithDetail("no hay campos para modificar")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return httperrors.ErrValidation.WithDetail("el nombre no puede ser vacío")
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		return httperrors.ErrValidation.WithDetail("el email no puede ser vacío")
	}
	if r.Pss != nil && *r.Pss == "" {
		return httperrors.ErrValidation.WithDetail("la contraseña no puede ser vacía")
	}
	return nil
}

// UpdateUsuarioFinanzasRequest es el body de PUT /usuario/update-finanzas/{id}.
type UpdateUsuarioFinanzasRequest struct {
	Finanzas []string `json:"finanzas"`
}

// UpdateUsuarioTagsRequest es el body de PUT /usuario/update-tags/{id}.
type UpdateUsuarioTagsRequest struct {
	Tags []string `json:"tags"`
}

// UsuarioResponse es la vista de un usuario con sus referencias
// dereferenciadas a resúmenes de solo nombre.
type UsuarioResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Rol      string       `json:"rol,omitempty"`
	Finanzas []RefResumen `json:"finanzas"`
	Tags     []RefResumen `json:"tags"`
}

// UsuarioCreatedResponse es el data de 201 en /usuario/add.
// Los ids de referencias van crudos: un usuario nuevo arranca sin ninguna.
type UsuarioCreatedResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Rol      string   `json:"rol,omitempty"`
	Finanzas []string `json:"finanzas"`
	Tags     []string `json:"tags"`
}
