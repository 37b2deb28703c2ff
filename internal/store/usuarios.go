package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type usuariosRepo struct {
	c *mongo.Collection
}

func (r *usuariosRepo) Insert(ctx context.Context, u *Usuario) (primitive.ObjectID, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	// Los arrays de referencias nunca se persisten como null.
	if u.Finanzas == nil {
		u.Finanzas = []primitive.ObjectID{}
	}
	if u.Tags == nil {
		u.Tags = []primitive.ObjectID{}
	}
	if _, err := r.c.InsertOne(ctx, u); err != nil {
		return primitive.NilObjectID, fmt.Errorf("store: insert usuario: %w", err)
	}
	return u.ID, nil
}

func (r *usuariosRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Usuario, error) {
	var u Usuario
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find usuario: %w", err)
	}
	return &u, nil
}

func (r *usuariosRepo) FindByEmail(ctx context.Context, email string) (*Usuario, error) {
	var u Usuario
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find usuario by email: %w", err)
	}
	return &u, nil
}

func (r *usuariosRepo) FindAll(ctx context.Context) ([]Usuario, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store: find usuarios: %w", err)
	}
	defer cur.Close(ctx)

	out := []Usuario{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode usuarios: %w", err)
	}
	return out, nil
}

func (r *usuariosRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields Fields) error {
	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("store: update usuario: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *usuariosRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("store: delete usuario: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *usuariosRepo) AppendFinanza(ctx context.Context, userID, finanzaID primitive.ObjectID) error {
	return r.push(ctx, userID, "finanzas", finanzaID)
}

func (r *usuariosRepo) AppendTag(ctx context.Context, userID, tagID primitive.ObjectID) error {
	return r.push(ctx, userID, "tags", tagID)
}

func (r *usuariosRepo) push(ctx context.Context, userID primitive.ObjectID, field string, refID primitive.ObjectID) error {
	res, err := r.c.UpdateByID(ctx, userID, bson.M{"$push": bson.M{field: refID}})
	if err != nil {
		return fmt.Errorf("store: push %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *usuariosRepo) RemoveFinanzaRef(ctx context.Context, finanzaID primitive.ObjectID) error {
	return r.pull(ctx, "finanzas", finanzaID)
}

func (r *usuariosRepo) RemoveTagRef(ctx context.Context, tagID primitive.ObjectID) error {
	return r.pull(ctx, "tags", tagID)
}

func (r *usuariosRepo) pull(ctx context.Context, field string, refID primitive.ObjectID) error {
	// UpdateMany: cero coincidencias no es error, la referencia ya no estaba.
	if _, err := r.c.UpdateMany(ctx, bson.M{}, bson.M{"$pull": bson.M{field: refID}}); err != nil {
		return fmt.Errorf("store: pull %s: %w", field, err)
	}
	return nil
}
