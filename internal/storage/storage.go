// Package storage provides the durable key-value port the session and
// liked-events state is persisted through. It is the Go analogue of the
// browser's per-profile local storage: a handful of well-known string keys
// mapping to small payloads that survive process restarts.
package storage

import "errors"

// Well-known keys. The names are part of the on-disk contract and must not
// change between releases.
const (
	// KeyAccessToken holds the raw bearer token string.
	KeyAccessToken = "access_token"
	// KeyLikedEvents holds a JSON array of liked event ids.
	KeyLikedEvents = "likedEvents"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a minimal durable key-value port. Implementations must make Set
// durable before returning; Get and Remove are synchronous.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set durably stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes the value stored under key. Removing an absent key is
	// not an error.
	Remove(key string) error
}
