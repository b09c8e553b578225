package repository

import "errors"

// ErrNotFound is returned when a record id has no match in a store.
var ErrNotFound = errors.New("record not found")

// BlobRepository is the key-value blob store behind every document cabinet:
// one serialized JSON value per fixed key.
type BlobRepository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}
