package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields es el conjunto de campos a escribir en un update parcial ($set).
// Solo los campos nombrados se tocan; el resto del documento queda intacto.
type Fields map[string]any

// Usuario es el documento de la colección "usuarios".
// Pss guarda el digest argon2id, nunca la contraseña en claro, y nunca
// se serializa hacia el cliente.
type Usuario struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string               `bson:"name" json:"name"`
	Email    string               `bson:"email" json:"email"`
	Pss      string               `bson:"pss" json:"-"`
	Rol      string               `bson:"rol,omitempty" json:"rol,omitempty"`
	Finanzas []primitive.ObjectID `bson:"finanzas" json:"finanzas"`
	Tags     []primitive.ObjectID `bson:"tags" json:"tags"`
}

// Tag es el documento de la colección "tags". User es el dueño, requerido.
type Tag struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string               `bson:"name" json:"name"`
	Finanzas []primitive.ObjectID `bson:"finanzas" json:"finanzas"`
	User     primitive.ObjectID   `bson:"user" json:"user"`
}

// Finanza es el documento de la colección "finanzas".
// Type: false = gasto, true = ingreso.
type Finanza struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Desc      string               `bson:"desc,omitempty" json:"desc,omitempty"`
	Price     float64              `bson:"price" json:"price"`
	PayMethod string               `bson:"payMethod" json:"payMethod"`
	Date      time.Time            `bson:"date" json:"date"`
	Type      bool                 `bson:"type" json:"type"`
	Tags      []primitive.ObjectID `bson:"tags" json:"tags"`
	User      primitive.ObjectID   `bson:"user" json:"user"`
}

// ParseID convierte un id hex de la URL/body a ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ParseIDs convierte una lista de ids hex; falla ante el primero inválido.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// HexIDs convierte ObjectIDs a su representación hex.
func HexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
