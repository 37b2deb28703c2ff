package services

import (
	"context"
	"errors"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/observability/logger"
	"github.com/dasolarter/finanzasapi/internal/store"
)

// TagService son las operaciones de la entidad Tag.
type TagService interface {
	Create(ctx context.Context, req dto.CreateTagRequest) (*dto.TagCreatedResponse, error)
	Get(ctx context.Context, id string) (*dto.TagResponse, error)
	List(ctx context.Context) ([]dto.TagResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTagRequest) error
	UpdateFinanzas(ctx context.Context, id string, finanzas []string) error
	Delete(ctx context.Context, id string) error
}

// TagDeps contiene las dependencias del service.
type TagDeps struct {
	Tags     store.TagRepository
	Usuarios store.UsuarioRepository
	Finanzas store.FinanzaRepository
}

type tagService struct {
	deps TagDeps
}

// NewTagService crea una nueva instancia del servicio.
func NewTagService(deps TagDeps) TagService {
	return &tagService{deps: deps}
}

// Create valida que el dueño exista, persiste el tag y después agrega su id
// al array tags del dueño. Las dos escrituras son secuenciales y sin
// transacción: si la segunda falla, el tag ya existe y queda sin linkear;
// se loguea y el create igual responde éxito.
func (s *tagService) Create(ctx context.Context, req dto.CreateTagRequest) (*dto.TagCreatedResponse, error) {
	log := logger.From(ctx)

	ownerID, err := parseID(req.User)
	if err != nil {
		return nil, err
	}
	if _, err := s.deps.Usuarios.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperrors.ErrValidation.WithDetail("el user dueño no existe")
		}
		return nil, translateStoreErr(err)
	}

	finanzaIDs, err := parseIDs(req.Finanzas)
	if err != nil {
		return nil, err
	}

	t := &store.Tag{
		Name:     req.Name,
		Finanzas: finanzaIDs,
		User:     ownerID,
	}
	id, err := s.deps.Tags.Insert(ctx, t)
	if err != nil {
		log.Error("failed to insert tag", logger.Err(err))
		return nil, translateStoreErr(err)
	}

	if err := s.deps.Usuarios.AppendTag(ctx, ownerID, id); err != nil {
		log.Warn("tag creado pero sin linkear al dueño",
			logger.TagID(id.Hex()), logger.UserID(ownerID.Hex()), logger.Err(err))
	}

	log.Info("tag created", logger.TagID(id.Hex()), logger.UserID(ownerID.Hex()))
	return &dto.TagCreatedResponse{
		ID:       id.Hex(),
		Name:     t.Name,
		Finanzas: store.HexIDs(t.Finanzas),
		User:     ownerID.Hex(),
	}, nil
}

// Get devuelve el tag con finanzas dereferenciadas (todos los campos propios,
// sin back-references) y el dueño reducido a name/email.
func (s *tagService) Get(ctx context.Context, id string) (*dto.TagResponse, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	t, err := s.deps.Tags.FindByID(ctx, oid)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return s.toResponse(ctx, t)
}

// List devuelve todos los tags poblados.
func (s *tagService) List(ctx context.Context) ([]dto.TagResponse, error) {
	ts, err := s.deps.Tags.FindAll(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	out := make([]dto.TagResponse, 0, len(ts))
	for i := range ts {
		resp, err := s.toResponse(ctx, &ts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *tagService) toResponse(ctx context.Context, t *store.Tag) (*dto.TagResponse, error) {
	finanzas, err := s.deps.Finanzas.FindByIDs(ctx, t.Finanzas)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	resp := &dto.TagResponse{
		ID:       t.ID.Hex(),
		Name:     t.Name,
		Finanzas: make([]dto.FinanzaEnTag, 0, len(finanzas)),
	}
	for _, f := range finanzas {
		resp.Finanzas = append(resp.Finanzas, dto.FinanzaEnTag{
			ID:        f.ID.Hex(),
			Name:      f.Name,
			Desc:      f.Desc,
			Price:     f.Price,
			PayMethod: f.PayMethod,
			Date:      f.Date,
			Type:      f.Type,
		})
	}

	// Dueño colgante (borrado sin limpiar): se omite, igual que un populate.
	if owner, err := s.deps.Usuarios.FindByID(ctx, t.User); err == nil {
		resp.User = &dto.UsuarioResumen{ID: owner.ID.Hex(), Name: owner.Name, Email: owner.Email}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, translateStoreErr(err)
	}
	return resp, nil
}

// Update escribe solo los campos presentes.
func (s *tagService) Update(ctx context.Context, id string, req dto.UpdateTagRequest) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	fields := store.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Finanzas != nil {
		oids, err := parseIDs(*req.Finanzas)
		if err != nil {
			return err
		}
		fields["finanzas"] = oids
	}

	if err := s.deps.Tags.UpdateFields(ctx, oid, fields); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// UpdateFinanzas reemplaza el array de referencias a finanzas del tag.
func (s *tagService) UpdateFinanzas(ctx context.Context, id string, finanzas []string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	oids, err := parseIDs(finanzas)
	if err != nil {
		return err
	}
	if err := s.deps.Tags.UpdateFields(ctx, oid, store.Fields{"finanzas": oids}); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// Delete borra el tag y limpia en cascada su id de los arrays tags de
// usuarios y finanzas. La limpieza corre después del borrado; si falla se
// loguea sin reintento.
func (s *tagService) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.deps.Tags.Delete(ctx, oid); err != nil {
		return translateStoreErr(err)
	}

	if err := s.deps.Usuarios.RemoveTagRef(ctx, oid); err != nil {
		log.Warn("cascade: referencia de tag no removida de usuarios", logger.TagID(id), logger.Err(err))
	}
	if err := s.deps.Finanzas.RemoveTagRef(ctx, oid); err != nil {
		log.Warn("cascade: referencia de tag no removida de finanzas", logger.TagID(id), logger.Err(err))
	}

	log.Info("tag deleted", logger.TagID(id))
	return nil
}
