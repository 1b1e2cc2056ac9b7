// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

// Store is a minimal key-value store. The vault state persists a handful of
// well-known keys in a store scoped to the owning contract instance; the host
// decides what actually backs it.
type Store interface {
	// Get returns the value of the key, or errors.NotFound if the key has
	// never been written.
	Get(key string) ([]byte, error)

	// Put writes the value of the key. Put is a single atomic replace.
	Put(key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}
