package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type tagsRepo struct {
	c *mongo.Collection
}

func (r *tagsRepo) Insert(ctx context.Context, t *Tag) (primitive.ObjectID, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Finanzas == nil {
		t.Finanzas = []primitive.ObjectID{}
	}
	if _, err := r.c.InsertOne(ctx, t); err != nil {
		return primitive.NilObjectID, fmt.Errorf("store: insert tag: %w", err)
	}
	return t.ID, nil
}

func (r *tagsRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Tag, error) {
	var t Tag
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find tag: %w", err)
	}
	return &t, nil
}

func (r *tagsRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Tag, error) {
	if len(ids) == 0 {
		return []Tag{}, nil
	}
	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("store: find tags by ids: %w", err)
	}
	defer cur.Close(ctx)

	var found []Tag
	if err := cur.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("store: decode tags: %w", err)
	}

	// $in no garantiza orden: reordenamos según el array de entrada y
	// omitimos los ids que ya no resuelven a ningún documento.
	byID := make(map[primitive.ObjectID]Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	out := make([]Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *tagsRepo) FindAll(ctx context.Context) ([]Tag, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store: find tags: %w", err)
	}
	defer cur.Close(ctx)

	out := []Tag{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode tags: %w", err)
	}
	return out, nil
}

func (r *tagsRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields Fields) error {
	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("store: update tag: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tagsRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("store: delete tag: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tagsRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := r.c.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("store: delete tags by user: %w", err)
	}
	return nil
}

func (r *tagsRepo) RemoveFinanzaRef(ctx context.Context, finanzaID primitive.ObjectID) error {
	if _, err := r.c.UpdateMany(ctx, bson.M{}, bson.M{"$pull": bson.M{"finanzas": finanzaID}}); err != nil {
		return fmt.Errorf("store: pull finanza ref: %w", err)
	}
	return nil
}
