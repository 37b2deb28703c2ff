package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dasolarter/finanzasapi/internal/http/dto"
	httperrors "github.com/dasolarter/finanzasapi/internal/http/errors"
	"github.com/dasolarter/finanzasapi/internal/store"
	"github.com/dasolarter/finanzasapi/internal/store/storetest"
)

func newFinanzaService(st *storetest.Fake) FinanzaService {
	return NewFinanzaService(FinanzaDeps{
		Finanzas: st.Finanzas(),
		Usuarios: st.Usuarios(),
		Tags:     st.Tags(),
	})
}

func ptrF(v float64) *float64 { return &v }
func ptrB(v bool) *bool       { return &v }
func ptrS(v string) *string   { return &v }

func TestFinanzaCreate_LinkeaAlDueño(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newFinanzaService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)

	created, err := s.Create(ctx, dto.CreateFinanzaRequest{
		Name:      "Supermercado",
		Desc:      "compra semanal",
		Price:     ptrF(1520.50),
		PayMethod: "debito",
		Date:      "2026-08-20",
		Type:      ptrB(false),
		User:      uid.Hex(),
	})
	require.NoError(t, err)
	require.Equal(t, 1520.50, created.Price)
	require.False(t, created.Type)
	require.Equal(t, uid.Hex(), created.User)

	u, err := st.Usuarios().FindByID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, []string{created.ID}, store.HexIDs(u.Finanzas))
}

func TestFinanzaCreate_DueñoInexistente(t *testing.T) {
	st := storetest.New()
	s := newFinanzaService(st)

	_, err := s.Create(context.Background(), dto.CreateFinanzaRequest{
		Name:      "Supermercado",
		Price:     ptrF(10),
		PayMethod: "cash",
		Date:      "2026-08-20",
		Type:      ptrB(false),
		User:      "eeeeeeeeeeeeeeeeeeeeeeee",
	})
	require.Equal(t, "VALIDATION", appCode(t, err))
}

// Los updates por campo tocan solo el campo nombrado.
func TestFinanzaUpdates_DeUnSoloCampo(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newFinanzaService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	fid, err := st.Finanzas().Insert(ctx, &store.Finanza{
		Name:      "Supermercado",
		Desc:      "compra semanal",
		Price:     1520.50,
		PayMethod: "debito",
		Date:      fecha,
		Type:      false,
		User:      uid,
	})
	require.NoError(t, err)
	id := fid.Hex()

	require.NoError(t, s.UpdateDesc(ctx, id, "compra del mes"))
	require.NoError(t, s.UpdatePrice(ctx, id, 1800))
	require.NoError(t, s.UpdatePayMethod(ctx, id, "credito"))
	require.NoError(t, s.UpdateType(ctx, id, true))

	f, err := st.Finanzas().FindByID(ctx, fid)
	require.NoError(t, err)
	require.Equal(t, "compra del mes", f.Desc)
	require.Equal(t, 1800.0, f.Price)
	require.Equal(t, "credito", f.PayMethod)
	require.True(t, f.Type)
	// lo no tocado queda igual
	require.Equal(t, "Supermercado", f.Name)
	require.Equal(t, fecha, f.Date)

	require.NoError(t, s.UpdateDate(ctx, id, "2026-09-01"))
	f, err = st.Finanzas().FindByID(ctx, fid)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), f.Date)

	err = s.UpdateDate(ctx, id, "20/08/2026")
	require.Equal(t, "VALIDATION", appCode(t, err))
}

// Una fecha rota en el update general rechaza el request entero; nada
// se escribe, ni siquiera los demás campos del body.
func TestFinanzaUpdate_FechaRotaNoEscribeNada(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newFinanzaService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	fid, err := st.Finanzas().Insert(ctx, &store.Finanza{
		Name:      "Supermercado",
		Price:     1520.50,
		PayMethod: "debito",
		Date:      fecha,
		User:      uid,
	})
	require.NoError(t, err)

	err = s.Update(ctx, fid.Hex(), dto.UpdateFinanzaRequest{
		Name: ptrS("Farmacia"),
		Date: ptrS("20/08/2026"),
	})
	require.Equal(t, "VALIDATION", appCode(t, err))

	f, err := st.Finanzas().FindByID(ctx, fid)
	require.NoError(t, err)
	require.Equal(t, "Supermercado", f.Name)
	require.Equal(t, fecha, f.Date)
	require.False(t, f.Date.IsZero())
}

func TestFinanzaGet_PopulaTagsYDueño(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newFinanzaService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	tid, err := st.Tags().Insert(ctx, &store.Tag{Name: "comida", User: uid})
	require.NoError(t, err)
	fid, err := st.Finanzas().Insert(ctx, &store.Finanza{
		Name: "Supermercado",
		User: uid,
		Tags: []primitive.ObjectID{tid},
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, fid.Hex())
	require.NoError(t, err)
	require.Equal(t, []dto.RefResumen{{ID: tid.Hex(), Name: "comida"}}, got.Tags)
	require.NotNil(t, got.User)
	require.Equal(t, "Ana", got.User.Name)
}

func TestFinanzaDelete_LimpiaReferencias(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()
	s := newFinanzaService(st)

	uid, err := st.Usuarios().Insert(ctx, &store.Usuario{Name: "Ana", Email: "ana@mail.com", Pss: "x"})
	require.NoError(t, err)
	created, err := s.Create(ctx, dto.CreateFinanzaRequest{
		Name:      "Supermercado",
		Price:     ptrF(100),
		PayMethod: "cash",
		Date:      "2026-08-20",
		Type:      ptrB(false),
		User:      uid.Hex(),
	})
	require.NoError(t, err)
	fid, err := store.ParseID(created.ID)
	require.NoError(t, err)

	tid, err := st.Tags().Insert(ctx, &store.Tag{
		Name:     "comida",
		Finanzas: []primitive.ObjectID{fid},
		User:     uid,
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, fid.Hex()))

	_, err = st.Finanzas().FindByID(ctx, fid)
	require.ErrorIs(t, err, store.ErrNotFound)

	u, err := st.Usuarios().FindByID(ctx, uid)
	require.NoError(t, err)
	require.NotContains(t, store.HexIDs(u.Finanzas), fid.Hex())

	tg, err := st.Tags().FindByID(ctx, tid)
	require.NoError(t, err)
	require.NotContains(t, store.HexIDs(tg.Finanzas), fid.Hex())
}

func TestFinanzaDelete_Inexistente(t *testing.T) {
	st := storetest.New()
	s := newFinanzaService(st)

	err := s.Delete(context.Background(), "ffffffffffffffffffffffff")
	require.ErrorIs(t, err, httperrors.ErrNotFound)
}
