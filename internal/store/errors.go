package store

import "errors"

var (
	// ErrNotFound: ningún documento coincide con el id dado.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidID: el id no es un ObjectID hex válido.
	ErrInvalidID = errors.New("store: invalid id")
)

// IsNotFound reporta si err corresponde a un documento inexistente.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
