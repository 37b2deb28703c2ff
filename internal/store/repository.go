package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Las interfaces de repositorio son lo único que conocen los services; la
// implementación Mongo vive en este paquete y los tests usan fakes en memoria.

// UsuarioRepository son las operaciones sobre la colección "usuarios",
// incluyendo el mantenimiento de los arrays de back-references
// (finanzas/tags) que los services disparan al crear recursos hijos.
type UsuarioRepository interface {
	Insert(ctx context.Context, u *Usuario) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Usuario, error)
	FindByEmail(ctx context.Context, email string) (*Usuario, error)
	FindAll(ctx context.Context) ([]Usuario, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields Fields) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AppendFinanza/AppendTag agregan un id al array correspondiente del dueño.
	AppendFinanza(ctx context.Context, userID, finanzaID primitive.ObjectID) error
	AppendTag(ctx context.Context, userID, tagID primitive.ObjectID) error

	// RemoveFinanzaRef/RemoveTagRef sacan un id de los arrays de todos los
	// usuarios (limpieza de cascada al borrar el recurso referenciado).
	RemoveFinanzaRef(ctx context.Context, finanzaID primitive.ObjectID) error
	RemoveTagRef(ctx context.Context, tagID primitive.ObjectID) error
}

// TagRepository son las operaciones sobre la colección "tags".
type TagRepository interface {
	Insert(ctx context.Context, t *Tag) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Tag, error)
	// FindByIDs dereferencia un array de ids preservando el orden de entrada;
	// los ids colgantes se omiten en silencio.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Tag, error)
	FindAll(ctx context.Context) ([]Tag, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields Fields) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	RemoveFinanzaRef(ctx context.Context, finanzaID primitive.ObjectID) error
}

// FinanzaRepository son las operaciones sobre la colección "finanzas".
type FinanzaRepository interface {
	Insert(ctx context.Context, f *Finanza) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Finanza, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Finanza, error)
	FindAll(ctx context.Context) ([]Finanza, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields Fields) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	RemoveTagRef(ctx context.Context, tagID primitive.ObjectID) error
}
