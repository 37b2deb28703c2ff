// Package storetest provee una implementación en memoria de los
// repositorios del store para tests de services y del router.
package storetest

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dasolarter/finanzasapi/internal/store"
)

// Fake es un store en memoria. Mantiene el orden de inserción para que los
// listados sean deterministas. No es seguro para uso concurrente.
type Fake struct {
	usuarios     map[primitive.ObjectID]*store.Usuario
	usuarioOrder []primitive.ObjectID

	tags     map[primitive.ObjectID]*store.Tag
	tagOrder []primitive.ObjectID

	finanzas     map[primitive.ObjectID]*store.Finanza
	finanzaOrder []primitive.ObjectID

	// FailNextAppend fuerza el error indicado en la próxima operación de
	// append, para simular la segunda escritura fallida de un create.
	FailNextAppend error
}

// New crea un Fake vacío.
func New() *Fake {
	return &Fake{
		usuarios: make(map[primitive.ObjectID]*store.Usuario),
		tags:     make(map[primitive.ObjectID]*store.Tag),
		finanzas: make(map[primitive.ObjectID]*store.Finanza),
	}
}

// Usuarios devuelve el repositorio fake de usuarios.
func (s *Fake) Usuarios() store.UsuarioRepository { return &fakeUsuarios{s} }

// Tags devuelve el repositorio fake de tags.
func (s *Fake) Tags() store.TagRepository { return &fakeTags{s} }

// Finanzas devuelve el repositorio fake de finanzas.
func (s *Fake) Finanzas() store.FinanzaRepository { return &fakeFinanzas{s} }

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ── usuarios ──

type fakeUsuarios struct{ s *Fake }

func (r *fakeUsuarios) Insert(_ context.Context, u *store.Usuario) (primitive.ObjectID, error) {
	cp := *u
	cp.ID = primitive.NewObjectID()
	if cp.Finanzas == nil {
		cp.Finanzas = []primitive.ObjectID{}
	}
	if cp.Tags == nil {
		cp.Tags = []primitive.ObjectID{}
	}
	r.s.usuarios[cp.ID] = &cp
	r.s.usuarioOrder = append(r.s.usuarioOrder, cp.ID)
	return cp.ID, nil
}

func (r *fakeUsuarios) FindByID(_ context.Context, id primitive.ObjectID) (*store.Usuario, error) {
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarios) FindByEmail(_ context.Context, email string) (*store.Usuario, error) {
	for _, id := range r.s.usuarioOrder {
		if u, ok := r.s.usuarios[id]; ok && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeUsuarios) FindAll(_ context.Context) ([]store.Usuario, error) {
	out := make([]store.Usuario, 0, len(r.s.usuarioOrder))
	for _, id := range r.s.usuarioOrder {
		if u, ok := r.s.usuarios[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUsuarios) UpdateFields(_ context.Context, id primitive.ObjectID, fields store.Fields) error {
	u, ok := r.s.usuarios[id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "pss":
			u.Pss = v.(string)
		case "rol":
			u.Rol = v.(string)
		case "finanzas":
			u.Finanzas = v.([]primitive.ObjectID)
		case "tags":
			u.Tags = v.([]primitive.ObjectID)
		}
	}
	return nil
}

func (r *fakeUsuarios) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.s.usuarios[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.usuarios, id)
	r.s.usuarioOrder = removeID(r.s.usuarioOrder, id)
	return nil
}

func (r *fakeUsuarios) AppendFinanza(_ context.Context, userID, finanzaID primitive.ObjectID) error {
	if err := r.s.FailNextAppend; err != nil {
		r.s.FailNextAppend = nil
		return err
	}
	u, ok := r.s.usuarios[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Finanzas = append(u.Finanzas, finanzaID)
	return nil
}

func (r *fakeUsuarios) AppendTag(_ context.Context, userID, tagID primitive.ObjectID) error {
	if err := r.s.FailNextAppend; err != nil {
		r.s.FailNextAppend = nil
		return err
	}
	u, ok := r.s.usuarios[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Tags = append(u.Tags, tagID)
	return nil
}

func (r *fakeUsuarios) RemoveFinanzaRef(_ context.Context, finanzaID primitive.ObjectID) error {
	for _, u := range r.s.usuarios {
		u.Finanzas = removeID(u.Finanzas, finanzaID)
	}
	return nil
}

func (r *fakeUsuarios) RemoveTagRef(_ context.Context, tagID primitive.ObjectID) error {
	for _, u := range r.s.usuarios {
		u.Tags = removeID(u.Tags, tagID)
	}
	return nil
}

// ── tags ──

type fakeTags struct{ s *Fake }

func (r *fakeTags) Insert(_ context.Context, t *store.Tag) (primitive.ObjectID, error) {
	cp := *t
	cp.ID = primitive.NewObjectID()
	if cp.Finanzas == nil {
		cp.Finanzas = []primitive.ObjectID{}
	}
	r.s.tags[cp.ID] = &cp
	r.s.tagOrder = append(r.s.tagOrder, cp.ID)
	return cp.ID, nil
}

func (r *fakeTags) FindByID(_ context.Context, id primitive.ObjectID) (*store.Tag, error) {
	t, ok := r.s.tags[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTags) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]store.Tag, error) {
	out := make([]store.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.s.tags[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTags) FindAll(_ context.Context) ([]store.Tag, error) {
	out := make([]store.Tag, 0, len(r.s.tagOrder))
	for _, id := range r.s.tagOrder {
		if t, ok := r.s.tags[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTags) UpdateFields(_ context.Context, id primitive.ObjectID, fields store.Fields) error {
	t, ok := r.s.tags[id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			t.Name = v.(string)
		case "finanzas":
			t.Finanzas = v.([]primitive.ObjectID)
		}
	}
	return nil
}

func (r *fakeTags) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.s.tags[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.tags, id)
	r.s.tagOrder = removeID(r.s.tagOrder, id)
	return nil
}

func (r *fakeTags) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, t := range r.s.tags {
		if t.User == userID {
			delete(r.s.tags, id)
			r.s.tagOrder = removeID(r.s.tagOrder, id)
		}
	}
	return nil
}

func (r *fakeTags) RemoveFinanzaRef(_ context.Context, finanzaID primitive.ObjectID) error {
	for _, t := range r.s.tags {
		t.Finanzas = removeID(t.Finanzas, finanzaID)
	}
	return nil
}

// ── finanzas ──

type fakeFinanzas struct{ s *Fake }

func (r *fakeFinanzas) Insert(_ context.Context, f *store.Finanza) (primitive.ObjectID, error) {
	cp := *f
	cp.ID = primitive.NewObjectID()
	if cp.Tags == nil {
		cp.Tags = []primitive.ObjectID{}
	}
	r.s.finanzas[cp.ID] = &cp
	r.s.finanzaOrder = append(r.s.finanzaOrder, cp.ID)
	return cp.ID, nil
}

func (r *fakeFinanzas) FindByID(_ context.Context, id primitive.ObjectID) (*store.Finanza, error) {
	f, ok := r.s.finanzas[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFinanzas) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]store.Finanza, error) {
	out := make([]store.Finanza, 0, len(ids))
	for _, id := range ids {
		if f, ok := r.s.finanzas[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFinanzas) FindAll(_ context.Context) ([]store.Finanza, error) {
	out := make([]store.Finanza, 0, len(r.s.finanzaOrder))
	for _, id := range r.s.finanzaOrder {
		if f, ok := r.s.finanzas[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFinanzas) UpdateFields(_ context.Context, id primitive.ObjectID, fields store.Fields) error {
	f, ok := r.s.finanzas[id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			f.Name = v.(string)
		case "desc":
			f.Desc = v.(string)
		case "price":
			f.Price = v.(float64)
		case "payMethod":
			f.PayMethod = v.(string)
		case "date":
			f.Date = v.(time.Time)
		case "type":
			f.Type = v.(bool)
		case "tags":
			f.Tags = v.([]primitive.ObjectID)
		}
	}
	return nil
}

func (r *fakeFinanzas) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.s.finanzas[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.finanzas, id)
	r.s.finanzaOrder = removeID(r.s.finanzaOrder, id)
	return nil
}

func (r *fakeFinanzas) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, f := range r.s.finanzas {
		if f.User == userID {
			delete(r.s.finanzas, id)
			r.s.finanzaOrder = removeID(r.s.finanzaOrder, id)
		}
	}
	return nil
}

func (r *fakeFinanzas) RemoveTagRef(_ context.Context, tagID primitive.ObjectID) error {
	for _, f := range r.s.finanzas {
		f.Tags = removeID(f.Tags, tagID)
	}
	return nil
}
