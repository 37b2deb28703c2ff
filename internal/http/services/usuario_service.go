package services

import (
	"context"
	"errors"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	jwtx "github.com/dasolarter/finanzasapi/internal/jwt"
	"github.com/dasolarter/finanzasapi/internal/observability/logger"
	"github.com/dasolarter/finanzasapi/internal/security/password"
	"github.com/dasolarter/finanzasapi/internal/store"
)

// UsuarioService son las operaciones de la entidad Usuario, incluido el login.
type UsuarioService interface {
	Create(ctx context.Context, req dto.CreateUsuarioRequest) (*dto.UsuarioCreatedResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Get(ctx context.Context, id string) (*dto.UsuarioResponse, error)
	List(ctx context.Context) ([]dto.UsuarioResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUsuarioRequest) error
	UpdateFinanzas(ctx context.Context, id string, finanzas []string) error
	UpdateTags(ctx context.Context, id string, tags []string) error
	Delete(ctx context.Context, id string) error
}

// UsuarioDeps contiene las dependencias del service.
type UsuarioDeps struct {
	Usuarios store.UsuarioRepository
	Tags     store.TagRepository
	Finanzas store.FinanzaRepository
	Issuer   *jwtx.Issuer
	Hash     password.Params
}

type usuarioService struct {
	deps UsuarioDeps
}

// NewUsuarioService crea una nueva instancia del servicio.
func NewUsuarioService(deps UsuarioDeps) UsuarioService {
	return &usuarioService{deps: deps}
}

// Create hashea la contraseña y persiste el usuario con arrays vacíos.
func (s *usuarioService) Create(ctx context.Context, req dto.CreateUsuarioRequest) (*dto.UsuarioCreatedResponse, error) {
	log := logger.From(ctx)

	phc, err := password.Hash(s.deps.Hash, req.Pss)
	if err != nil {
		log.Error("failed to hash password", logger.Err(err))
		return nil, httperrors.ErrStore.WithCause(err)
	}

	u := &store.Usuario{
		Name:  req.Name,
		Email: req.Email,
		Pss:   phc,
		Rol:   req.Rol,
	}
	id, err := s.deps.Usuarios.Insert(ctx, u)
	if err != nil {
		log.Error("failed to insert usuario", logger.Err(err), logger.Email(req.Email))
		return nil, translateStoreErr(err)
	}

	log.Info("usuario created", logger.UserID(id.Hex()), logger.Email(req.Email))
	return &dto.UsuarioCreatedResponse{
		ID:       id.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		Rol:      u.Rol,
		Finanzas: []string{},
		Tags:     []string{},
	}, nil
}

// Login busca por email y verifica la contraseña. user-no-existe y
// contraseña-incorrecta devuelven el MISMO error, sin diferenciar cuál
// de los dos factores falló.
func (s *usuarioService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	log := logger.From(ctx)

	u, err := s.deps.Usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperrors.ErrInvalidCredentials
		}
		log.Error("login: store failure", logger.Err(err))
		return nil, translateStoreErr(err)
	}

	if !password.Verify(req.Pss, u.Pss) {
		return nil, httperrors.ErrInvalidCredentials
	}

	token, err := s.deps.Issuer.Issue(u.ID.Hex())
	if err != nil {
		log.Error("login: token issue failed", logger.Err(err))
		return nil, httperrors.ErrStore.WithCause(err)
	}

	log.Info("login exitoso", logger.UserID(u.ID.Hex()))
	return &dto.LoginResponse{Token: token}, nil
}

// Get devuelve el usuario con finanzas y tags dereferenciados a resúmenes
// de solo nombre.
func (s *usuarioService) Get(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := s.deps.Usuarios.FindByID(ctx, oid)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return s.toResponse(ctx, u)
}

// List devuelve todos los usuarios, cada uno con sus referencias pobladas.
func (s *usuarioService) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	us, err := s.deps.Usuarios.FindAll(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	out := make([]dto.UsuarioResponse, 0, len(us))
	for i := range us {
		resp, err := s.toResponse(ctx, &us[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *usuarioService) toResponse(ctx context.Context, u *store.Usuario) (*dto.UsuarioResponse, error) {
	finanzas, err := s.deps.Finanzas.FindByIDs(ctx, u.Finanzas)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	tags, err := s.deps.Tags.FindByIDs(ctx, u.Tags)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	resp := &dto.UsuarioResponse{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		Rol:      u.Rol,
		Finanzas: make([]dto.RefResumen, 0, len(finanzas)),
		Tags:     make([]dto.RefResumen, 0, len(tags)),
	}
	for _, f := range finanzas {
		resp.Finanzas = append(resp.Finanzas, dto.RefResumen{ID: f.ID.Hex(), Name: f.Name})
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, dto.RefResumen{ID: t.ID.Hex(), Name: t.Name})
	}
	return resp, nil
}

// Update escribe solo los campos presentes en el request. Si viene pss,
// se vuelve a hashear: nunca se persiste una contraseña en claro.
func (s *usuarioService) Update(ctx context.Context, id string, req dto.UpdateUsuarioRequest) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	fields := store.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Pss != nil {
		phc, err := password.Hash(s.deps.Hash, *req.Pss)
		if err != nil {
			return httperrors.ErrStore.WithCause(err)
		}
		fields["pss"] = phc
	}
	if req.Finanzas != nil {
		oids, err := parseIDs(*req.Finanzas)
		if err != nil {
			return err
		}
		fields["finanzas"] = oids
	}
	if req.Tags != nil {
		oids, err := parseIDs(*req.Tags)
		if err != nil {
			return err
		}
		fields["tags"] = oids
	}

	if err := s.deps.Usuarios.UpdateFields(ctx, oid, fields); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// UpdateFinanzas reemplaza el array completo de referencias a finanzas.
func (s *usuarioService) UpdateFinanzas(ctx context.Context, id string, finanzas []string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	oids, err := parseIDs(finanzas)
	if err != nil {
		return err
	}
	if err := s.deps.Usuarios.UpdateFields(ctx, oid, store.Fields{"finanzas": oids}); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// UpdateTags reemplaza el array completo de referencias a tags.
func (s *usuarioService) UpdateTags(ctx context.Context, id string, tags []string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	oids, err := parseIDs(tags)
	if err != nil {
		return err
	}
	if err := s.deps.Usuarios.UpdateFields(ctx, oid, store.Fields{"tags": oids}); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// Delete borra el usuario y en cascada sus finanzas y tags. La cascada corre
// después del borrado principal; si falla se loguea y no se reintenta ni se
// revierte (escrituras secuenciales sin transacción, igual que en create).
func (s *usuarioService) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.deps.Usuarios.Delete(ctx, oid); err != nil {
		return translateStoreErr(err)
	}

	if err := s.deps.Finanzas.DeleteByUser(ctx, oid); err != nil {
		log.Warn("cascade: finanzas del usuario no borradas", logger.UserID(id), logger.Err(err))
	}
	if err := s.deps.Tags.DeleteByUser(ctx, oid); err != nil {
		log.Warn("cascade: tags del usuario no borrados", logger.UserID(id), logger.Err(err))
	}

	log.Info("usuario deleted", logger.UserID(id))
	return nil
}
