package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type finanzasRepo struct {
	c *mongo.Collection
}

func (r *finanzasRepo) Insert(ctx context.Context, f *Finanza) (primitive.ObjectID, error) {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.Tags == nil {
		f.Tags = []primitive.ObjectID{}
	}
	if _, err := r.c.InsertOne(ctx, f); err != nil {
		return primitive.NilObjectID, fmt.Errorf("store: insert finanza: %w", err)
	}
	return f.ID, nil
}

func (r *finanzasRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Finanza, error) {
	var f Finanza
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find finanza: %w", err)
	}
	return &f, nil
}

func (r *finanzasRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Finanza, error) {
	if len(ids) == 0 {
		return []Finanza{}, nil
	}
	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("store: find finanzas by ids: %w", err)
	}
	defer cur.Close(ctx)

	var found []Finanza
	if err := cur.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("store: decode finanzas: %w", err)
	}

	byID := make(map[primitive.ObjectID]Finanza, len(found))
	for _, f := range found {
		byID[f.ID] = f
	}
	out := make([]Finanza, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *finanzasRepo) FindAll(ctx context.Context) ([]Finanza, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store: find finanzas: %w", err)
	}
	defer cur.Close(ctx)

	out := []Finanza{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode finanzas: %w", err)
	}
	return out, nil
}

func (r *finanzasRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields Fields) error {
	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("store: update finanza: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *finanzasRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("store: delete finanza: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *finanzasRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := r.c.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("store: delete finanzas by user: %w", err)
	}
	return nil
}

func (r *finanzasRepo) RemoveTagRef(ctx context.Context, tagID primitive.ObjectID) error {
	if _, err := r.c.UpdateMany(ctx, bson.M{}, bson.M{"$pull": bson.M{"tags": tagID}}); err != nil {
		return fmt.Errorf("store: pull tag ref: %w", err)
	}
	return nil
}
