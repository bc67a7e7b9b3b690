package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore keeps one entity kind in one MongoDB collection.
type MongoStore[T any] struct {
	coll *mongo.Collection
}

func NewMongoStore[T any](coll *mongo.Collection) *MongoStore[T] {
	return &MongoStore[T]{coll: coll}
}

func (s *MongoStore[T]) Insert(ctx context.Context, doc any) (string, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", s.coll.Name(), err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", s.coll.Name(), res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoStore[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var out T
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", s.coll.Name(), id, err)
	}
	return &out, nil
}

func (s *MongoStore[T]) FindBy(ctx context.Context, field string, value any) ([]T, error) {
	return s.find(ctx, bson.M{field: value})
}

// List returns the whole collection. There is no limit.
func (s *MongoStore[T]) List(ctx context.Context) ([]T, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoStore[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.coll.Name(), err)
	}

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.coll.Name(), err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (s *MongoStore[T]) Update(ctx context.Context, id string, fields any) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s %s: %w", s.coll.Name(), id, err)
	}
	// matched, not modified: an identical replacement is still a success
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[T]) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", s.coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Increment adds delta to a numeric field with a single findAndModify and
// returns the document as it is after the change.
func (s *MongoStore[T]) Increment(ctx context.Context, id string, field string, delta int) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out T
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("increment %s.%s for %s: %w", s.coll.Name(), field, id, err)
	}
	return &out, nil
}

func (s *MongoStore[T]) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}
