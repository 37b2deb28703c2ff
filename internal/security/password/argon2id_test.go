package password

import (
	"strings"
	"testing"
)

// Parámetros bajos para que los tests no tarden.
var testParams = Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func TestHashVerify_RoundTrip(t *testing.T) {
	phc, err := Hash(testParams, "secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$v=19$") {
		t.Fatalf("unexpected PHC prefix: %q", phc)
	}
	if phc == "secret" {
		t.Fatal("digest must not equal plaintext")
	}
	if !Verify("secret", phc) {
		t.Fatal("Verify should accept the original plaintext")
	}
	if Verify("Secret", phc) {
		t.Fatal("Verify should reject a different plaintext")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := Hash(testParams, ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestHash_SaltedDigestsDiffer(t *testing.T) {
	a, err := Hash(testParams, "secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash(testParams, "secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
	if !Verify("secret", a) || !Verify("secret", b) {
		t.Fatal("both digests must verify")
	}
}

// El PHC string lleva sal y clave derivada como segmentos separados por "$";
// el parser tiene que distinguirlos aun cuando ninguno contiene espacios.
func TestVerify_ParseaSegmentosDelPHC(t *testing.T) {
	phc, err := Hash(testParams, "secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	parts := strings.Split(phc, "$")
	if len(parts) != 6 {
		t.Fatalf("el digest debe tener 6 segmentos, tiene %d: %q", len(parts), phc)
	}
	if !Verify("secret", phc) {
		t.Fatal("Verify debe aceptar un digest bien formado")
	}
	// Sal y clave fusionadas en un solo segmento: ya no es un PHC válido.
	merged := strings.Join(parts[:4], "$") + "$" + parts[4] + parts[5]
	if Verify("secret", merged) {
		t.Fatal("Verify debe rechazar un digest con segmentos fusionados")
	}
}

func TestVerify_MalformedInputs(t *testing.T) {
	malformed := []string{
		"",
		"secret",
		"$argon2id$v=18$m=8192,t=1,p=1$AAAA$BBBB", // versión incorrecta
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$???",   // base64 inválido
		"$argon2id$v=19$m=8192,t=1,p=1$AAAA",      // falta la clave derivada
		"$argon2id$v=19$m=8192,t=1,p=1$AAAA$BBBB$CCCC", // segmento de más
		"$argon2id$v=19$m=x,t=1,p=1$AAAA$BBBB",    // parámetro no numérico
		"$bcrypt$whatever",
	}
	for _, phc := range malformed {
		if Verify("secret", phc) {
			t.Fatalf("Verify debe rechazar input malformado: %q", phc)
		}
	}
}
