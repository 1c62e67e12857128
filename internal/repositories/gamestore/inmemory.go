package gamestore

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// InMemoryRepository implements Repository using process-lifetime storage
type InMemoryRepository struct {
	mu        sync.RWMutex
	store     map[string][]byte
	namespace string
}

// NewInMemory creates a new in-memory game store
func NewInMemory(namespace string) *InMemoryRepository {
	return &InMemoryRepository{
		store:     make(map[string][]byte),
		namespace: namespace,
	}
}

// Get retrieves the value stored under a key
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.store[namespaced(r.namespace, input.Key)]
	if !exists {
		return nil, errors.NotFoundf("no value stored under %s", input.Key)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Value: append([]byte(nil), value...)}, nil
}

// Put stores a value under a key
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[namespaced(r.namespace, input.Key)] = append([]byte(nil), input.Value...)

	return &PutOutput{}, nil
}

// Delete removes a key
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := namespaced(r.namespace, input.Key)
	_, exists := r.store[key]
	delete(r.store, key)

	return &DeleteOutput{Deleted: exists}, nil
}
