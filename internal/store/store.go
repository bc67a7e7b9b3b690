package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid identifier")
)

// Store is the storage contract shared by every entity collection.
// Update applies a $set of the fields in the given document; a record that
// exists but whose fields are unchanged still counts as updated.
type Store[T any] interface {
	Insert(ctx context.Context, doc any) (string, error)
	Get(ctx context.Context, id string) (*T, error)
	FindBy(ctx context.Context, field string, value any) ([]T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, fields any) error
	Delete(ctx context.Context, id string) error
	Increment(ctx context.Context, id string, field string, delta int) (*T, error)
	Ping(ctx context.Context) error
}

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
