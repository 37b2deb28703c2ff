package services

import (
	"context"
	"errors"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/observability/logger"
	"github.com/dasolarter/finanzasapi/internal/store"
)

// FinanzaService son las operaciones de la entidad Finanza, incluidos los
// updates con alcance de un solo campo.
type FinanzaService interface {
	Create(ctx context.Context, req dto.CreateFinanzaRequest) (*dto.FinanzaCreatedResponse, error)
	Get(ctx context.Context, id string) (*dto.FinanzaResponse, error)
	List(ctx context.Context) ([]dto.FinanzaResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateFinanzaRequest) error
	UpdateDesc(ctx context.Context, id, desc string) error
	UpdatePrice(ctx context.Context, id string, price float64) error
	UpdatePayMethod(ctx context.Context, id, payMethod string) error
	UpdateDate(ctx context.Context, id, date string) error
	UpdateType(ctx context.Context, id string, tipo bool) error
	UpdateTags(ctx context.Context, id string, tags []string) error
	Delete(ctx context.Context, id string) error
}

// FinanzaDeps contiene las dependencias del service.
type FinanzaDeps struct {
	Finanzas store.FinanzaRepository
	Usuarios store.UsuarioRepository
	Tags     store.TagRepository
}

type finanzaService struct {
	deps FinanzaDeps
}

// NewFinanzaService crea una nueva instancia del servicio.
func NewFinanzaService(deps FinanzaDeps) FinanzaService {
	return &finanzaService{deps: deps}
}

// Create valida que el dueño exista, persiste la finanza y después agrega su
// id al array finanzas del dueño. Dos escrituras secuenciales sin
// transacción: si la segunda falla, la finanza queda creada sin linkear;
// se loguea y el create igual responde éxito.
func (s *finanzaService) Create(ctx context.Context, req dto.CreateFinanzaRequest) (*dto.FinanzaCreatedResponse, error) {
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

	tagIDs, err := parseIDs(req.Tags)
	if err != nil {
		return nil, err
	}

	f := &store.Finanza{
		Name:      req.Name,
		Desc:      req.Desc,
		Price:     *req.Price,
		PayMethod: req.PayMethod,
		Date:      req.ParsedDate(),
		Type:      *req.Type,
		Tags:      tagIDs,
		User:      ownerID,
	}
	id, err := s.deps.Finanzas.Insert(ctx, f)
	if err != nil {
		log.Error("failed to insert finanza", logger.Err(err))
		return nil, translateStoreErr(err)
	}

	if err := s.deps.Usuarios.AppendFinanza(ctx, ownerID, id); err != nil {
		log.Warn("finanza creada pero sin linkear al dueño",
			logger.FinanzaID(id.Hex()), logger.UserID(ownerID.Hex()), logger.Err(err))
	}

	log.Info("finanza created", logger.FinanzaID(id.Hex()), logger.UserID(ownerID.Hex()))
	return &dto.FinanzaCreatedResponse{
		ID:        id.Hex(),
		Name:      f.Name,
		Desc:      f.Desc,
		Price:     f.Price,
		PayMethod: f.PayMethod,
		Date:      f.Date,
		Type:      f.Type,
		Tags:      store.HexIDs(f.Tags),
		User:      ownerID.Hex(),
	}, nil
}

// Get devuelve la finanza con tags dereferenciados a solo nombre y el dueño
// reducido a name/email.
func (s *finanzaService) Get(ctx context.Context, id string) (*dto.FinanzaResponse, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f, err := s.deps.Finanzas.FindByID(ctx, oid)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return s.toResponse(ctx, f)
}

// List devuelve todas las finanzas pobladas.
func (s *finanzaService) List(ctx context.Context) ([]dto.FinanzaResponse, error) {
	fs, err := s.deps.Finanzas.FindAll(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	out := make([]dto.FinanzaResponse, 0, len(fs))
	for i := range fs {
		resp, err := s.toResponse(ctx, &fs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *finanzaService) toResponse(ctx context.Context, f *store.Finanza) (*dto.FinanzaResponse, error) {
	tags, err := s.deps.Tags.FindByIDs(ctx, f.Tags)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	resp := &dto.FinanzaResponse{
		ID:        f.ID.Hex(),
		Name:      f.Name,
		Desc:      f.Desc,
		Price:     f.Price,
		PayMethod: f.PayMethod,
		Date:      f.Date,
		Type:      f.Type,
		Tags:      make([]dto.RefResumen, 0, len(tags)),
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, dto.RefResumen{ID: t.ID.Hex(), Name: t.Name})
	}

	if owner, err := s.deps.Usuarios.FindByID(ctx, f.User); err == nil {
		resp.User = &dto.UsuarioResumen{ID: owner.ID.Hex(), Name: owner.Name, Email: owner.Email}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, translateStoreErr(err)
	}
	return resp, nil
}

// Update escribe solo los campos presentes.
func (s *finanzaService) Update(ctx context.Context, id string, req dto.UpdateFinanzaRequest) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	fields := store.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Desc != nil {
		fields["desc"] = *req.Desc
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.PayMethod != nil {
		fields["payMethod"] = *req.PayMethod
	}
	if req.Date != nil {
		d, ok := dto.ParseDate(*req.Date)
		if !ok {
			return httperrors.ErrValidation.WithDetail("la fecha debe ser RFC3339 o AAAA-MM-DD")
		}
		fields["date"] = d
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Tags != nil {
		oids, err := parseIDs(*req.Tags)
		if err != nil {
			return err
		}
		fields["tags"] = oids
	}

	if err := s.deps.Finanzas.UpdateFields(ctx, oid, fields); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// Los updates de un solo campo sobreescriben únicamente el campo nombrado.

func (s *finanzaService) UpdateDesc(ctx context.Context, id, desc string) error {
	return s.setField(ctx, id, store.Fields{"desc": desc})
}

func (s *finanzaService) UpdatePrice(ctx context.Context, id string, price float64) error {
	return s.setField(ctx, id, store.Fields{"price": price})
}

func (s *finanzaService) UpdatePayMethod(ctx context.Context, id, payMethod string) error {
	return s.setField(ctx, id, store.Fields{"payMethod": payMethod})
}

func (s *finanzaService) UpdateDate(ctx context.Context, id, date string) error {
	d, ok := dto.ParseDate(date)
	if !ok {
		return httperrors.ErrValidation.WithDetail("la fecha debe ser RFC3339 o AAAA-MM-DD")
	}
	return s.setField(ctx, id, store.Fields{"date": d})
}

func (s *finanzaService) UpdateType(ctx context.Context, id string, tipo bool) error {
	return s.setField(ctx, id, store.Fields{"type": tipo})
}

func (s *finanzaService) UpdateTags(ctx context.Context, id string, tags []string) error {
	oids, err := parseIDs(tags)
	if err != nil {
		return err
	}
	return s.setField(ctx, id, store.Fields{"tags": oids})
}

func (s *finanzaService) setField(ctx context.Context, id string, fields store.Fields) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.deps.Finanzas.UpdateFields(ctx, oid, fields); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// Delete borra la finanza y limpia en cascada su id de los arrays finanzas
// de usuarios y tags.
func (s *finanzaService) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.deps.Finanzas.Delete(ctx, oid); err != nil {
		return translateStoreErr(err)
	}

	if err := s.deps.Usuarios.RemoveFinanzaRef(ctx, oid); err != nil {
		log.Warn("cascade: referencia de finanza no removida de usuarios", logger.FinanzaID(id), logger.Err(err))
	}
	if err := s.deps.Tags.RemoveFinanzaRef(ctx, oid); err != nil {
		log.Warn("cascade: referencia de finanza no removida de tags", logger.FinanzaID(id), logger.Err(err))
	}

	log.Info("finanza deleted", logger.FinanzaID(id))
	return nil
}
