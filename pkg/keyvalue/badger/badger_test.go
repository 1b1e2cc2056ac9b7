// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue/badger"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t testing.TB) keyvalue.Store {
		s, err := badger.New(t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
