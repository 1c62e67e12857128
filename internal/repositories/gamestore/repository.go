// Package gamestore provides the key-value persistence for the hero roster
// and the in-progress game snapshot
package gamestore

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestoremock github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore Repository

import (
	"context"
)

// Well-known record keys
const (
	KeyCharacters = "characters"
	KeySavedGame  = "saved_game"
)

// Repository defines a string-keyed store of JSON documents
type Repository interface {
	// Get retrieves the raw value stored under a key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if nothing is stored under the key
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a value under a key, replacing any previous value
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes a key. Deleting a missing key succeeds.
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for reading a key
type GetInput struct {
	Key string
}

// GetOutput defines the output for reading a key
type GetOutput struct {
	Value []byte
}

// PutInput defines the input for writing a key
type PutInput struct {
	Key   string
	Value []byte
}

// PutOutput defines the output for writing a key
type PutOutput struct{}

// DeleteInput defines the input for deleting a key
type DeleteInput struct {
	Key string
}

// DeleteOutput defines the output for deleting a key
type DeleteOutput struct {
	// Deleted is false when the key did not exist
	Deleted bool
}

const errKeyEmpty = "key cannot be empty"

func namespaced(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}
