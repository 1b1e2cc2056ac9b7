// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"os"

	"github.com/dgraph-io/badger/v4"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue"
)

// Store is a Badger-backed key-value store.
type Store struct {
	badger *badger.DB
}

var _ keyvalue.Store = (*Store)(nil)

// New opens a Badger database at the given path.
func New(filepath string) (*Store, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, errors.InternalError.WithFormat("open badger: create %q: %w", filepath, err)
	}

	opts := badger.DefaultOptions(filepath)
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.InternalError.WithFormat("open badger: %w", err)
	}
	return &Store{badger: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.badger.Close() }

func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.badger.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		switch {
		case err == nil:
			// Ok
		case errors.Is(err, badger.ErrKeyNotFound):
			return errors.NotFound.WithFormat("%s not found", key)
		default:
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	return value, nil
}

func (s *Store) Put(key string, value []byte) error {
	err := s.badger.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	return errors.UnknownError.Wrap(err)
}

func (s *Store) Delete(key string) error {
	err := s.badger.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	return errors.UnknownError.Wrap(err)
}
