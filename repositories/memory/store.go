// Package memory provides process-local repositories. They back the
// memory:// database URL and the package tests.
package memory

import (
	"alertsystem/interfaces"
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// store keeps copies of documents so callers must call Update to persist changes.
type store[T any, PT interfaces.DocumentPtr[T], F any] struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]T
	order []primitive.ObjectID
	match func(F, *T) bool
}

func newStore[T any, PT interfaces.DocumentPtr[T], F any](match func(F, *T) bool) *store[T, PT, F] {
	return &store[T, PT, F]{
		items: make(map[primitive.ObjectID]T),
		match: match,
	}
}

func (s *store[T, PT, F]) Create(_ context.Context, doc *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := PT(doc)
	if p.GetID().IsZero() {
		p.SetID(primitive.NewObjectID())
	}
	if _, exists := s.items[p.GetID()]; exists {
		return interfaces.ErrDuplicate
	}
	s.items[p.GetID()] = *doc
	s.order = append(s.order, p.GetID())
	return nil
}

func (s *store[T, PT, F]) GetByID(_ context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, interfaces.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.items[objectID]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return &doc, nil
}

func (s *store[T, PT, F]) Update(_ context.Context, doc *T) error {
	id := PT(doc).GetID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return interfaces.ErrNotFound
	}
	s.items[id] = *doc
	return nil
}

func (s *store[T, PT, F]) Delete(_ context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return interfaces.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[objectID]; !ok {
		return interfaces.ErrNotFound
	}
	delete(s.items, objectID)
	for i, v := range s.order {
		if v == objectID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns matches newest first.
func (s *store[T, PT, F]) List(_ context.Context, filter F) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*T, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		doc := s.items[s.order[i]]
		if s.match(filter, &doc) {
			results = append(results, &doc)
		}
	}
	return results, nil
}

func (s *store[T, PT, F]) Count(ctx context.Context, filter F) (int64, error) {
	docs, err := s.List(ctx, filter)
	return int64(len(docs)), err
}

func (s *store[T, PT, F]) find(match func(*T) bool) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		doc := s.items[id]
		if match(&doc) {
			return &doc, true
		}
	}
	return nil, false
}

func matchString(want, got string) bool {
	return want == "" || want == got
}

// matchFold compares locality names ignoring case, like the Mongo regex filter.
func matchFold(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

func matchID(want string, got primitive.ObjectID) bool {
	return want == "" || want == got.Hex()
}

func matchOptionalID(want string, got *primitive.ObjectID) bool {
	if want == "" {
		return true
	}
	return got != nil && got.Hex() == want
}
