package dto

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2026-08-20", true, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"2026-08-20T15:04:05Z", true, time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)},
		{"  2026-08-20 ", true, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"20/08/2026", false, time.Time{}},
		{"", false, time.Time{}},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseDate(%q): ok=%v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCreateUsuarioRequest_Validate(t *testing.T) {
	r := CreateUsuarioRequest{Name: "  Ana ", Email: " ANA@Mail.com ", Pss: "x"}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if r.Name != "Ana" {
		t.Errorf("name sin trimear: %q", r.Name)
	}
	if r.Email != "ana@mail.com" {
		t.Errorf("email sin normalizar: %q", r.Email)
	}

	for _, bad := range []CreateUsuarioRequest{
		{Email: "a@b.c", Pss: "x"},
		{Name: "Ana", Pss: "x"},
		{Name: "Ana", Email: "a@b.c"},
	} {
		if err := bad.Validate(); err == nil {
			t.Errorf("Validate(%+v) debería fallar", bad)
		}
	}
}

func TestCreateFinanzaRequest_Validate(t *testing.T) {
	price := 100.0
	tipo := false

	ok := CreateFinanzaRequest{
		Name: "Super", Price: &price, PayMethod: "cash",
		Date: "2026-08-20", Type: &tipo, User: "aaaaaaaaaaaaaaaaaaaaaaaa",
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := ok.ParsedDate(); !got.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParsedDate = %v", got)
	}

	for name, bad := range map[string]CreateFinanzaRequest{
		"sin name":      {Price: &price, PayMethod: "cash", Date: "2026-08-20", Type: &tipo, User: "a"},
		"sin price":     {Name: "x", PayMethod: "cash", Date: "2026-08-20", Type: &tipo, User: "a"},
		"sin payMethod": {Name: "x", Price: &price, Date: "2026-08-20", Type: &tipo, User: "a"},
		"sin date":      {Name: "x", Price: &price, PayMethod: "cash", Type: &tipo, User: "a"},
		"sin type":      {Name: "x", Price: &price, PayMethod: "cash", Date: "2026-08-20", User: "a"},
		"sin user":      {Name: "x", Price: &price, PayMethod: "cash", Date: "2026-08-20", Type: &tipo},
		"fecha rota":    {Name: "x", Price: &price, PayMethod: "cash", Date: "20/08/2026", Type: &tipo, User: "a"},
	} {
		if err := bad.Validate(); err == nil {
			t.Errorf("%s: Validate debería fallar", name)
		}
	}
}

func TestUpdateUsuarioRequest_Validate(t *testing.T) {
	if err := (&UpdateUsuarioRequest{}).Validate(); err == nil {
		t.Error("update vacío debería fallar")
	}

	name := "Ana"
	if err := (&UpdateUsuarioRequest{Name: &name}).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	vacio := "  "
	if err := (&UpdateUsuarioRequest{Name: &vacio}).Validate(); err == nil {
		t.Error("name en blanco debería fallar")
	}
}

func TestUpdateFinanzaRequest_Validate(t *testing.T) {
	if err := (&UpdateFinanzaRequest{}).Validate(); err == nil {
		t.Error("update vacío debería fallar")
	}

	fecha := "2026-08-20"
	if err := (&UpdateFinanzaRequest{Date: &fecha}).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	rota := "ayer"
	if err := (&UpdateFinanzaRequest{Date: &rota}).Validate(); err == nil {
		t.Error("fecha rota debería fallar")
	}
}
