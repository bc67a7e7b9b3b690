package store

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a process-local Store. Documents go through the same BSON
// encoding as MongoStore so field names and omitempty rules behave the same.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]bson.M
	order []primitive.ObjectID
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{docs: make(map[primitive.ObjectID]bson.M)}
}

func toDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromDocument[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MemoryStore[T]) Insert(_ context.Context, doc any) (string, error) {
	m, err := toDocument(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oid, ok := m["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		m["_id"] = oid
	}
	if _, exists := s.docs[oid]; exists {
		return "", fmt.Errorf("duplicate id %s", oid.Hex())
	}
	s.docs[oid] = m
	s.order = append(s.order, oid)
	return oid.Hex(), nil
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.docs[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return fromDocument[T](m)
}

func (s *MemoryStore[T]) FindBy(_ context.Context, field string, value any) ([]T, error) {
	return s.collect(func(m bson.M) bool {
		return reflect.DeepEqual(m[field], value)
	})
}

func (s *MemoryStore[T]) List(_ context.Context) ([]T, error) {
	return s.collect(func(bson.M) bool { return true })
}

func (s *MemoryStore[T]) collect(match func(bson.M) bool) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for _, oid := range s.order {
		m := s.docs[oid]
		if !match(m) {
			continue
		}
		rec, err := fromDocument[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (s *MemoryStore[T]) Update(_ context.Context, id string, fields any) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	set, err := toDocument(fields)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.docs[oid]
	if !ok {
		return ErrNotFound
	}
	for k, v := range set {
		if k == "_id" {
			continue
		}
		m[k] = v
	}
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[oid]; !ok {
		return ErrNotFound
	}
	delete(s.docs, oid)
	for i, o := range s.order {
		if o == oid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore[T]) Increment(_ context.Context, id string, field string, delta int) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.docs[oid]
	if !ok {
		return nil, ErrNotFound
	}
	switch v := m[field].(type) {
	case nil:
		m[field] = widen(int64(delta))
	case int32:
		m[field] = widen(int64(v) + int64(delta))
	case int64:
		m[field] = v + int64(delta)
	case float64:
		m[field] = v + float64(delta)
	default:
		return nil, fmt.Errorf("cannot increment non-numeric field %q (%T)", field, v)
	}
	return fromDocument[T](m)
}

func (s *MemoryStore[T]) Ping(context.Context) error {
	return nil
}

// widen keeps a counter as int32 while it fits and promotes it to int64
// otherwise, as $inc does.
func widen(n int64) any {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return n
	}
	return int32(n)
}
