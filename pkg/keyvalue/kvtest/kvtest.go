// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package kvtest is a conformance suite for key-value store implementations.
package kvtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue"
)

// Opener opens a fresh, empty store.
type Opener func(t testing.TB) keyvalue.Store

// Run runs the conformance suite against the store.
func Run(t *testing.T, open Opener) {
	t.Run("GetMissing", func(t *testing.T) {
		s := open(t)
		_, err := s.Get("token/identity")
		require.ErrorIs(t, err, errors.NotFound)
	})

	t.Run("PutGet", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Put("token/identity", []byte("foo")))
		v, err := s.Get("token/identity")
		require.NoError(t, err)
		require.Equal(t, []byte("foo"), v)
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Put("k", []byte("old")))
		require.NoError(t, s.Put("k", []byte("new")))
		v, err := s.Get("k")
		require.NoError(t, err)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("Delete", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Put("k", []byte("v")))
		require.NoError(t, s.Delete("k"))
		_, err := s.Get("k")
		require.ErrorIs(t, err, errors.NotFound)

		// Deleting a missing key is not an error
		require.NoError(t, s.Delete("missing"))
	})

	t.Run("ValueIsolation", func(t *testing.T) {
		s := open(t)
		v := []byte("original")
		require.NoError(t, s.Put("k", v))
		v[0] = 'X'

		u, err := s.Get("k")
		require.NoError(t, err)
		require.Equal(t, []byte("original"), u)

		u[0] = 'Y'
		w, err := s.Get("k")
		require.NoError(t, err)
		require.Equal(t, []byte("original"), w)
	})
}
