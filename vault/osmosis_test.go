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

func TestOsmosisInstantiateFlow(t *testing.T) {
	st := newTestState(t)
	ctx := execCtx("alice", "deployer")

	// Phase one: the create-denom sub-request is dispatched and the pending
	// record is written
	effects, err := new(OsmosisDenom).Instantiate(st, ctx, []byte(`{"subdenom":"vault"}`))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 1)
	sub := effects.Messages[0]
	require.Equal(t, ReplyIDDenomCreated, sub.ID)
	require.Equal(t, protocol.ReplyAlways, sub.ReplyOn)
	mod, ok := sub.Msg.(*protocol.ModuleMsg)
	require.True(t, ok)
	require.Equal(t, protocol.TypeURLCreateDenom, mod.TypeURL)

	_, err = st.LoadIdentity()
	require.ErrorIs(t, err, errors.NotFound)

	// Phase two: the host replies with the generated denom
	effects, err = HandleReply(st, nil, &protocol.Reply{
		ID: ReplyIDDenomCreated,
		Result: protocol.SubMsgResult{Events: []protocol.Event{
			protocol.NewEvent(EventTypeCreateDenom, protocol.Attr(AttrKeyNewTokenDenom, "factory/alice/vault")),
		}},
	})
	require.NoError(t, err)

	ev, ok := protocol.FindEvent(effects.Events, EventTypeTokenFinalized)
	require.True(t, ok)
	name, _ := ev.Attribute(AttrKeyToken)
	require.Equal(t, "factory/alice/vault", name)

	// The identity is durable and round-trips through the store
	token, err := Load(st)
	require.NoError(t, err)
	osmo, ok := token.(*OsmosisDenom)
	require.True(t, ok)
	require.Equal(t, "factory/alice/vault", osmo.Denom.String())

	// The pending record is consumed
	_, err = st.LoadPending()
	require.ErrorIs(t, err, errors.NotFound)

	// No supply has been minted yet
	q := &fakeQuerier{supply: func(denom string) (protocol.Amount, error) {
		require.Equal(t, "factory/alice/vault", denom)
		return protocol.ZeroAmount(), nil
	}}
	supply, err := osmo.QueryTotalSupply(st, q)
	require.NoError(t, err)
	require.True(t, supply.IsZero())
}

func TestOsmosisInstantiateParams(t *testing.T) {
	cases := []struct {
		name   string
		params string
		status errors.Status
	}{
		{"BadJson", `{"subdenom":`, errors.EncodingError},
		{"EmptySubdenom", `{"subdenom":""}`, errors.ValidationError},
		{"SlashInSubdenom", `{"subdenom":"a/b"}`, errors.ValidationError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := newTestState(t)
			_, err := new(OsmosisDenom).Instantiate(st, execCtx("alice", "deployer"), []byte(c.params))
			require.ErrorIs(t, err, c.status)

			_, err = st.LoadPending()
			require.ErrorIs(t, err, errors.NotFound)
		})
	}
}

func TestOsmosisMint(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")

	effects, err := token.Mint(st, execCtx("alice", "deployer"), "bob", protocol.NewAmount(1000))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 2)

	mod, ok := effects.Messages[0].Msg.(*protocol.ModuleMsg)
	require.True(t, ok)
	require.Equal(t, protocol.TypeURLMint, mod.TypeURL)

	send, ok := effects.Messages[1].Msg.(*protocol.BankSend)
	require.True(t, ok)
	require.Equal(t, "bob", send.ToAddress)
	require.Len(t, send.Amount, 1)
	require.Equal(t, "factory/alice/vault", send.Amount[0].Denom)
	require.Equal(t, "1000", send.Amount[0].Amount.String())

	t.Run("Zero", func(t *testing.T) {
		_, err := token.Mint(st, execCtx("alice", "deployer"), "bob", protocol.ZeroAmount())
		require.ErrorIs(t, err, errors.ValidationError)
	})

	t.Run("NotOwner", func(t *testing.T) {
		_, err := token.Mint(st, execCtx("mallory", "deployer"), "bob", protocol.NewAmount(1))
		require.ErrorIs(t, err, errors.Unauthorized)
	})
}

func TestOsmosisBurn(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")

	effects, err := token.Burn(st, execCtx("alice", "deployer"), protocol.NewAmount(400))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 1)
	mod, ok := effects.Messages[0].Msg.(*protocol.ModuleMsg)
	require.True(t, ok)
	require.Equal(t, protocol.TypeURLBurn, mod.TypeURL)

	t.Run("NotOwner", func(t *testing.T) {
		_, err := token.Burn(st, execCtx("mallory", "deployer"), protocol.NewAmount(1))
		require.ErrorIs(t, err, errors.Unauthorized)
	})
}

func TestOsmosisTransfer(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")

	effects, err := token.Transfer(st, execCtx("alice", "deployer"), "bob", protocol.NewAmount(10))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 1)
	send, ok := effects.Messages[0].Msg.(*protocol.BankSend)
	require.True(t, ok)
	require.Equal(t, "bob", send.ToAddress)
}

func TestOsmosisSend(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")

	effects, err := token.Send(st, execCtx("alice", "deployer"), "pool1", protocol.NewAmount(10), []byte(`{"deposit":{}}`))
	require.NoError(t, err)
	require.Len(t, effects.Messages, 1)
	exec, ok := effects.Messages[0].Msg.(*protocol.ExecuteContract)
	require.True(t, ok)
	require.Equal(t, "pool1", exec.Contract)
	require.Len(t, exec.Funds, 1)
	require.Equal(t, "factory/alice/vault", exec.Funds[0].Denom)
}

func TestOsmosisReceive(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")
	coin := func(denom, amount string) protocol.Coin {
		a, err := protocol.AmountFromString(amount)
		require.NoError(t, err)
		return protocol.NewCoin(denom, a)
	}

	cases := []struct {
		name   string
		funds  []protocol.Coin
		status errors.Status
	}{
		{"Exact", []protocol.Coin{coin("factory/alice/vault", "50")}, errors.OK},
		{"ExactAmongOthers", []protocol.Coin{coin("uosmo", "7"), coin("factory/alice/vault", "50")}, errors.OK},
		{"Nothing", nil, errors.AmountMismatch},
		{"WrongDenom", []protocol.Coin{coin("uosmo", "50")}, errors.AmountMismatch},
		{"TooLittle", []protocol.Coin{coin("factory/alice/vault", "49")}, errors.AmountMismatch},
		{"TooMuch", []protocol.Coin{coin("factory/alice/vault", "51")}, errors.AmountMismatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := execCtx("alice", "bob", c.funds...)
			_, err := token.Receive(st, ctx, protocol.NewAmount(50))
			if c.status == errors.OK {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.status)
			}
		})
	}
}

func TestOsmosisQueryBalance(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")

	q := &fakeQuerier{balance: func(address, denom string) (protocol.Amount, error) {
		require.Equal(t, "bob", address)
		require.Equal(t, "factory/alice/vault", denom)
		return protocol.NewAmount(42), nil
	}}
	balance, err := token.QueryBalance(st, q, "bob")
	require.NoError(t, err)
	require.Equal(t, "42", balance.String())
}

func TestOsmosisTransferFromUnsupported(t *testing.T) {
	st := newTestState(t)
	token := NewOsmosisDenom("alice", "vault")
	_, err := TransferFrom(token, st, execCtx("alice", "deployer"), "alice", "bob", protocol.NewAmount(1))
	require.ErrorIs(t, err, errors.NotSupported)
}
