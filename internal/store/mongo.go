// Package store implementa la persistencia en MongoDB: tres colecciones
// (usuarios, tags, finanzas) enlazadas por referencias de ObjectID.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	colUsuarios = "usuarios"
	colTags     = "tags"
	colFinanzas = "finanzas"
)

// Store agrupa el cliente Mongo y los repositorios por entidad.
// El handle es de solo lectura después del arranque: se construye una vez en
// main y se inyecta; ninguna capa lo muta en caliente.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre la conexión, verifica con un ping y devuelve el Store listo.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

// Close cierra la conexión subyacente.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifica que el servidor siga accesible (usado por /healthz).
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Usuarios devuelve el repositorio de usuarios.
func (s *Store) Usuarios() UsuarioRepository {
	return &usuariosRepo{c: s.db.Collection(colUsuarios)}
}

// Tags devuelve el repositorio de tags.
func (s *Store) Tags() TagRepository {
	return &tagsRepo{c: s.db.Collection(colTags)}
}

// Finanzas devuelve el repositorio de finanzas.
func (s *Store) Finanzas() FinanzaRepository {
	return &finanzasRepo{c: s.db.Collection(colFinanzas)}
}
