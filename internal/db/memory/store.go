// Package memory implements db.Store in process memory for local runs and
// tests. Data does not survive a restart.
package memory

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/kailas-cloud/dateformat/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store keeps hashes and plain values in maps guarded by one lock.
// A key holds either a hash or a value, like in Redis.
type Store struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
	values map[string][]byte
	closed bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		hashes: make(map[string]map[string]string),
		values: make(map[string][]byte),
	}
}

// Ping fails once the store is closed.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("ping: store closed")
	}
	return nil
}

// Close marks the store closed. Data is kept until the store is collected.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// WaitForReady returns immediately unless the store is closed.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// HSet sets hash fields, leaving other fields of the hash untouched.
func (s *Store) HSet(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; ok {
		return &db.Error{Op: db.OpHSet, Err: fmt.Errorf("key %s holds a value, not a hash", key)}
	}
	h, ok := s.hashes[key]
	if !ok {
		h = make(map[string]string, len(fields))
		s.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

// HGetAll returns a copy of the hash at key, empty when missing.
func (s *Store) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyHash(s.hashes[key]), nil
}

// HGetAllMulti returns copies of the hashes at keys in order.
func (s *Store) HGetAllMulti(_ context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i] = copyHash(s.hashes[k])
	}
	return out, nil
}

// Del removes key whatever it holds.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hashes, key)
	delete(s.values, key)
	return nil
}

// Exists checks if a key exists.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, h := s.hashes[key]
	_, v := s.values[key]
	return h || v, nil
}

// Scan returns the keys matching a glob pattern, sorted.
func (s *Store) Scan(_ context.Context, pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, &db.Error{Op: db.OpScan, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	add := func(k string) {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	for k := range s.hashes {
		add(k)
	}
	for k := range s.values {
		add(k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Get retrieves a copy of the value at key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value at key, replacing a hash if one is there.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hashes, key)
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func copyHash(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
