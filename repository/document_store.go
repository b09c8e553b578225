package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"bizdocs/models"
)

// schemaVersion is written into every persisted envelope so a future
// format change has something to dispatch on.
const schemaVersion = 1

type blobEnvelope[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// Store is one document cabinet: an in-memory list, newest-created first,
// synchronized to a single blob-store key after every mutation. The
// in-memory state stays authoritative when a persist fails.
type Store[T models.Record] struct {
	blob   BlobRepository
	key    string
	mu     sync.Mutex
	items  []T
	lastID int64
}

// NewStore loads the cabinet from its blob key. A read failure degrades to
// an empty list rather than blocking startup.
func NewStore[T models.Record](blob BlobRepository, key string) *Store[T] {
	s := &Store[T]{blob: blob, key: key}
	s.load()
	return s
}

func (s *Store[T]) load() {
	data, err := s.blob.Get(s.key)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("loading records failed, starting empty")
		return
	}
	if len(data) == 0 {
		return
	}

	var env blobEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		// Pre-envelope layout: a bare array under the same key.
		if err := json.Unmarshal(data, &env.Records); err != nil {
			log.Warn().Err(err).Str("key", s.key).Msg("decoding records failed, starting empty")
			return
		}
	}
	s.items = env.Records
	for _, it := range s.items {
		if it.RecordID() > s.lastID {
			s.lastID = it.RecordID()
		}
	}
}

// List returns the records newest-created first. The slice is a copy but
// the records are the stored ones: treat them as read-only and route every
// change through Update.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the stored record. Same read-only contract as List: mutating
// it in place bypasses persistence.
func (s *Store[T]) Get(id int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Add assigns an id and creation time, prepends the record and persists.
// Ids are millisecond timestamps, bumped past the last issued id so two
// adds within the same millisecond stay distinct.
func (s *Store[T]) Add(d T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	d.SetRecordID(id)
	d.SetRecordCreatedAt(now)
	s.items = append([]T{d}, s.items...)
	s.persist()
	return d
}

// Update replaces the record matching id. The stored id and creation time
// are preserved regardless of what the draft carries.
func (s *Store[T]) Update(id int64, d T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.RecordID() == id {
			d.SetRecordID(id)
			d.SetRecordCreatedAt(it.RecordCreatedAt())
			s.items[i] = d
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the record; deleting an absent id is a no-op.
func (s *Store[T]) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.RecordID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Flush writes the current list to the blob store, surfacing the error.
// Used at shutdown; regular mutations persist fire-and-forget.
func (s *Store[T]) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write()
}

func (s *Store[T]) persist() {
	if err := s.write(); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("persisting records failed, keeping in-memory state")
	}
}

func (s *Store[T]) write() error {
	env := blobEnvelope[T]{Version: schemaVersion, Records: s.items}
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.blob.Put(s.key, data)
}
