// Package jwt emite y verifica los bearer tokens de la API.
//
// Firma simétrica HS256 con un único secreto de proceso, inyectado en el
// constructor al arranque (nunca leído de estado global dentro de handlers).
// El token embebe {sub: userId, iat, exp} con exp = iat + 24h por defecto.
package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing: el caller no presentó credencial alguna.
	ErrTokenMissing = errors.New("jwt: token missing")
	// ErrTokenMalformed: token no parseable, firma inválida o claims corruptas.
	ErrTokenMalformed = errors.New("jwt: token malformed")
	// ErrTokenExpired: firma válida pero exp quedó en el pasado.
	ErrTokenExpired = errors.New("jwt: token expired")
)

// Issuer firma y verifica tokens con un secreto HS256.
type Issuer struct {
	secret []byte
	ttl    time.Duration

	// now es inyectable para testear expiración sin dormir.
	now func() time.Time
}

// NewIssuer crea un Issuer con TTL de 24h. El secreto no puede ser vacío.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("jwt: empty signing secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock reemplaza la fuente de tiempo. Solo para tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// TTL devuelve la vigencia configurada de los tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue emite un token firmado para userID con exp = now + TTL.
func (i *Issuer) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("jwt: empty user id")
	}
	now := i.now().UTC()
	claims := jwtv5.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tk.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

// Verify valida firma y expiración y devuelve el userID embebido.
// Un token vacío es ErrTokenMissing; tampered/no-parseable es ErrTokenMalformed;
// vencido es ErrTokenExpired.
func (i *Issuer) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrTokenMissing
	}

	keyfunc := func(t *jwtv5.Token) (any, error) { return i.secret, nil }
	tok, err := jwtv5.Parse(token, keyfunc,
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !tok.Valid {
		return "", ErrTokenMalformed
	}

	claims, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrTokenMalformed
	}
	return sub, nil
}
