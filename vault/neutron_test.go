// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

func TestNeutronInstantiate(t *testing.T) {
	st := newTestState(t)
	ctx := execCtx("alice", "deployer")

	// Identity is known up front, so no reply protocol: the create-denom
	// message is dispatched plainly and the identity is already persisted
	effects, err := new(NeutronDenom).Instantiate(st, ctx, []byte(`{"subdenom":"vault"}`))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 1)
	require.Equal(t, protocol.ReplyNever, effects.Messages[0].ReplyOn)
	mod, ok := effects.Messages[0].Msg.(*protocol.ModuleMsg)
	require.True(t, ok)
	require.Equal(t, protocol.TypeURLCreateDenom, mod.TypeURL)

	_, err = st.LoadPending()
	require.ErrorIs(t, err, errors.NotFound)

	token, err := Load(st)
	require.NoError(t, err)
	neutron, ok := token.(*NeutronDenom)
	require.True(t, ok)
	require.Equal(t, "factory/alice/vault", neutron.Denom.String())
}

func TestNeutronSupplyTracking(t *testing.T) {
	st := newTestState(t)
	token := NewNeutronDenom("alice", "vault")
	ctx := execCtx("alice", "deployer")

	requireSupply(t, st, 0)

	effects, err := token.Mint(st, ctx, "bob", protocol.NewAmount(1000))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 2)
	requireSupply(t, st, 1000)

	_, err = token.Burn(st, ctx, protocol.NewAmount(400))
	require.NoError(t, err)
	requireSupply(t, st, 600)

	// Burning past the tracked supply fails and leaves it unchanged
	_, err = token.Burn(st, ctx, protocol.NewAmount(700))
	require.ErrorIs(t, err, errors.ArithmeticError)
	requireSupply(t, st, 600)

	supply, err := token.QueryTotalSupply(st, nil)
	require.NoError(t, err)
	require.Equal(t, "600", supply.String())
}

func TestNeutronMint(t *testing.T) {
	st := newTestState(t)
	token := NewNeutronDenom("alice", "vault")

	t.Run("Zero", func(t *testing.T) {
		_, err := token.Mint(st, execCtx("alice", "deployer"), "bob", protocol.ZeroAmount())
		require.ErrorIs(t, err, errors.ValidationError)
		requireSupply(t, st, 0)
	})

	t.Run("NotOwner", func(t *testing.T) {
		_, err := token.Mint(st, execCtx("mallory", "deployer"), "bob", protocol.NewAmount(1))
		require.ErrorIs(t, err, errors.Unauthorized)
		requireSupply(t, st, 0)
	})
}

func TestNeutronReceive(t *testing.T) {
	st := newTestState(t)
	token := NewNeutronDenom("alice", "vault")

	funds := protocol.NewCoin("factory/alice/vault", protocol.NewAmount(50))
	_, err := token.Receive(st, execCtx("alice", "bob", funds), protocol.NewAmount(50))
	require.NoError(t, err)

	_, err = token.Receive(st, execCtx("alice", "bob", funds), protocol.NewAmount(51))
	require.ErrorIs(t, err, errors.AmountMismatch)
}

func TestNeutronTransferFromUnsupported(t *testing.T) {
	st := newTestState(t)
	token := NewNeutronDenom("alice", "vault")
	_, err := TransferFrom(token, st, execCtx("alice", "deployer"), "alice", "bob", protocol.NewAmount(1))
	require.ErrorIs(t, err, errors.NotSupported)
}
