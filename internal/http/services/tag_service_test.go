package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/store"
	"github.com/dasolarter/finanzasapi/internal/store/storetest"
)

func newTagService(st *storetest.Fake) TagService {
	return NewTagService(TagDeps{
		Tags:     st.Tags(),
		Usuarios: st.Usuarios(),
		Finanzas: st.Finanzas(),
	})
}

func TestTagCreate_LinkeaAlDueño(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newTagService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)

	created, err := s.Create(ctx, dto.CreateTagRequest{Name: "comida", User: uid.Hex()})
	require.NoError(t, err)
	require.Equal(t, "comida", created.Name)
	require.Equal(t, uid.Hex(), created.User)

	u, err := st.Usuarios().FindByID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, []string{created.ID}, store.HexIDs(u.Tags))
}

func TestTagCreate_DueñoInexistente(t *testing.T) {
	st := storetest.New()
	s := newTagService(st)

	_, err := s.Create(context.Background(), dto.CreateTagRequest{
		Name: "comida",
		User: "cccccccccccccccccccccccc",
	})
	require.Equal(t, "VALIDATION", appCode(t, err))
}

// Segunda escritura fallida: el tag queda creado igual, sin linkear.
func TestTagCreate_FallaElLinkeoIgualCrea(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newTagService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)

	st.FailNextAppend = errors.New("write concern timeout")
	created, err := s.Create(ctx, dto.CreateTagRequest{Name: "comida", User: uid.Hex()})
	require.NoError(t, err)

	oid, err := store.ParseID(created.ID)
	require.NoError(t, err)
	_, err = st.Tags().FindByID(ctx, oid)
	require.NoError(t, err)

	u, err := st.Usuarios().FindByID(ctx, uid)
	require.NoError(t, err)
	require.Empty(t, u.Tags)
}

func TestTagGet_PopulaFinanzasYDueño(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newTagService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	fid, err := st.Finanzas().Insert(ctx, &store.Finanza{Name: "Super", Price: 99.9, PayMethod: "cash", User: uid})
	require.NoError(t, err)

	// un id colgante mezclado: se omite en silencio
	colgante, err := st.Finanzas().Insert(ctx, &store.Finanza{Name: "borrada", User: uid})
	require.NoError(t, err)
	tid, err := st.Tags().Insert(ctx, &store.Tag{Name: "comida", User: uid})
	require.NoError(t, err)

	require.NoError(t, s.UpdateFinanzas(ctx, tid.Hex(), []string{fid.Hex(), colgante.Hex()}))
	require.NoError(t, st.Finanzas().Delete(ctx, colgante))

	got, err := s.Get(ctx, tid.Hex())
	require.NoError(t, err)
	require.Len(t, got.Finanzas, 1)
	require.Equal(t, "Super", got.Finanzas[0].Name)
	require.Equal(t, 99.9, got.Finanzas[0].Price)
	require.NotNil(t, got.User)
	require.Equal(t, "ana@mail.com", got.User.Email)
}

func TestTagGet_DueñoColganteSeOmite(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newTagService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	tid, err := st.Tags().Insert(ctx, &store.Tag{Name: "comida", User: uid})
	require.NoError(t, err)
	require.NoError(t, st.Usuarios().Delete(ctx, uid))

	got, err := s.Get(ctx, tid.Hex())
	require.NoError(t, err)
	require.Nil(t, got.User)
}

func TestTagDelete_LimpiaReferencias(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newTagService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	created, err := s.Create(ctx, dto.CreateTagRequest{Name: "comida", User: uid.Hex()})
	require.NoError(t, err)
	tid, err := store.ParseID(created.ID)
	require.NoError(t, err)

	fid, err := st.Finanzas().Insert(ctx, &store.Finanza{
		Name: "Super",
		User: uid,
		Tags: []primitive.ObjectID{tid},
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, tid.Hex()))

	_, err = st.Tags().FindByID(ctx, tid)
	require.ErrorIs(t, err, store.ErrNotFound)

	u, err := st.Usuarios().FindByID(ctx, uid)
	require.NoError(t, err)
	require.NotContains(t, store.HexIDs(u.Tags), tid.Hex())

	f, err := st.Finanzas().FindByID(ctx, fid)
	require.NoError(t, err)
	require.NotContains(t, store.HexIDs(f.Tags), tid.Hex())
}

func TestTagDelete_Inexistente(t *testing.T) {
	st := storetest.New()
	s := newTagService(st)

	err := s.Delete(context.Background(), "dddddddddddddddddddddddd")
	require.ErrorIs(t, err, httperrors.ErrNotFound)
}
