// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory

import (
	"sync"

	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue"
)

// Store is an in-memory key-value store. The zero value is ready to use.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ keyvalue.Store = (*Store)(nil)

// New returns a new in-memory store.
func New() *Store { return new(Store) }

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return nil, errors.NotFound.WithFormat("%s not found", key)
	}

	// Copy so the caller cannot mutate the stored value
	u := make([]byte, len(v))
	copy(u, v)
	return u, nil
}

func (s *Store) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		s.entries = map[string][]byte{}
	}

	v := make([]byte, len(value))
	copy(v, value)
	s.entries[key] = v
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
