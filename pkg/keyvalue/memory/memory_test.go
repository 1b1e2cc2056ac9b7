// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory_test

import (
	"testing"

	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue/kvtest"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue/memory"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t testing.TB) keyvalue.Store {
		return memory.New()
	})
}
