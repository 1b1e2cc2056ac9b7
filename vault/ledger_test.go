// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/vault-token/internal/logging"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue/memory"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

func newTestState(t testing.TB) *State {
	t.Helper()
	return NewState(memory.New(), WithLogger(logging.NewTestZeroLogger(t, logging.LogFormatPlain)))
}

func execCtx(contract, sender string, funds ...protocol.Coin) *protocol.ExecContext {
	return &protocol.ExecContext{Contract: contract, Sender: sender, Funds: funds}
}

func newTestLedger(t testing.TB) (*Ledger, *State) {
	t.Helper()
	st := newTestState(t)
	token := new(Ledger)
	_, err := token.Instantiate(st, execCtx("vault1", "alice"), []byte(`{"name":"Vault Token","symbol":"VT","decimals":6}`))
	require.NoError(t, err)
	return token, st
}

func requireBalance(t *testing.T, st *State, address string, want uint64) {
	t.Helper()
	b, err := st.Balance(address)
	require.NoError(t, err)
	require.Equal(t, protocol.NewAmount(want).String(), b.String())
}

func requireSupply(t *testing.T, st *State, want uint64) {
	t.Helper()
	s, err := st.LoadSupply()
	require.NoError(t, err)
	require.Equal(t, protocol.NewAmount(want).String(), s.String())
}

func TestLedgerInstantiate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		_, st := newTestLedger(t)

		// The identity slot must name a ledger token
		token, err := Load(st)
		require.NoError(t, err)
		require.IsType(t, (*Ledger)(nil), token)

		info, err := st.LoadLedgerInfo()
		require.NoError(t, err)
		require.Equal(t, &LedgerInfo{Name: "Vault Token", Symbol: "VT", Decimals: 6}, info)
	})

	cases := []struct {
		name   string
		params string
		status errors.Status
	}{
		{"BadJson", `{"name":`, errors.EncodingError},
		{"EmptyName", `{"name":"","symbol":"VT"}`, errors.ValidationError},
		{"EmptySymbol", `{"name":"Vault Token","symbol":""}`, errors.ValidationError},
		{"TooManyDecimals", `{"name":"Vault Token","symbol":"VT","decimals":19}`, errors.ValidationError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := newTestState(t)
			_, err := new(Ledger).Instantiate(st, execCtx("vault1", "alice"), []byte(c.params))
			require.ErrorIs(t, err, c.status)

			// Nothing may be persisted on failure
			_, err = st.LoadIdentity()
			require.ErrorIs(t, err, errors.NotFound)
		})
	}
}

func TestLedgerMintBurn(t *testing.T) {
	token, st := newTestLedger(t)
	ctx := execCtx("vault1", "alice")

	effects, err := token.Mint(st, ctx, "vault1", protocol.NewAmount(1000))
	require.NoError(t, err)
	require.Empty(t, effects.Messages)
	requireSupply(t, st, 1000)
	requireBalance(t, st, "vault1", 1000)

	_, err = token.Burn(st, ctx, protocol.NewAmount(400))
	require.NoError(t, err)
	requireSupply(t, st, 600)
	requireBalance(t, st, "vault1", 600)

	// Burning more than the balance fails and mutates nothing
	_, err = token.Burn(st, ctx, protocol.NewAmount(700))
	require.ErrorIs(t, err, errors.ArithmeticError)
	requireSupply(t, st, 600)
	requireBalance(t, st, "vault1", 600)
}

func TestLedgerMintZero(t *testing.T) {
	token, st := newTestLedger(t)

	_, err := token.Mint(st, execCtx("vault1", "alice"), "bob", protocol.ZeroAmount())
	require.ErrorIs(t, err, errors.ValidationError)
	requireSupply(t, st, 0)
	requireBalance(t, st, "bob", 0)
}

func TestLedgerMintRequiresInstantiation(t *testing.T) {
	st := newTestState(t)
	_, err := new(Ledger).Mint(st, execCtx("vault1", "alice"), "bob", protocol.NewAmount(1))
	require.ErrorIs(t, err, errors.NotFound)
}

func TestLedgerTransfer(t *testing.T) {
	token, st := newTestLedger(t)
	_, err := token.Mint(st, execCtx("vault1", "alice"), "alice", protocol.NewAmount(100))
	require.NoError(t, err)

	_, err = token.Transfer(st, execCtx("vault1", "alice"), "bob", protocol.NewAmount(30))
	require.NoError(t, err)
	requireBalance(t, st, "alice", 70)
	requireBalance(t, st, "bob", 30)

	// Transfers conserve supply
	requireSupply(t, st, 100)

	t.Run("Insufficient", func(t *testing.T) {
		_, err := token.Transfer(st, execCtx("vault1", "bob"), "alice", protocol.NewAmount(31))
		require.ErrorIs(t, err, errors.ArithmeticError)
		requireBalance(t, st, "alice", 70)
		requireBalance(t, st, "bob", 30)
	})

	t.Run("SelfTransfer", func(t *testing.T) {
		_, err := token.Transfer(st, execCtx("vault1", "bob"), "bob", protocol.NewAmount(10))
		require.NoError(t, err)
		requireBalance(t, st, "bob", 30)

		_, err = token.Transfer(st, execCtx("vault1", "bob"), "bob", protocol.NewAmount(31))
		require.ErrorIs(t, err, errors.ArithmeticError)
	})
}

func TestLedgerSend(t *testing.T) {
	token, st := newTestLedger(t)
	_, err := token.Mint(st, execCtx("vault1", "alice"), "alice", protocol.NewAmount(100))
	require.NoError(t, err)

	effects, err := token.Send(st, execCtx("vault1", "alice"), "pool1", protocol.NewAmount(25), []byte(`{"deposit":{}}`))
	require.NoError(t, err)
	requireBalance(t, st, "alice", 75)
	requireBalance(t, st, "pool1", 25)

	// The receiving contract gets the cw20-style hook
	require.Len(t, effects.Messages, 1)
	exec, ok := effects.Messages[0].Msg.(*protocol.ExecuteContract)
	require.True(t, ok)
	require.Equal(t, "pool1", exec.Contract)
	require.JSONEq(t, `{"sender":"alice","amount":"25","msg":{"deposit":{}}}`, string(exec.Payload))
}

func TestLedgerReceive(t *testing.T) {
	token, st := newTestLedger(t)
	_, err := token.Mint(st, execCtx("vault1", "alice"), "alice", protocol.NewAmount(100))
	require.NoError(t, err)

	effects, err := token.Receive(st, execCtx("vault1", "alice"), protocol.NewAmount(40))
	require.NoError(t, err)
	require.Empty(t, effects.Messages)
	requireBalance(t, st, "alice", 60)
	requireBalance(t, st, "vault1", 40)

	_, err = token.Receive(st, execCtx("vault1", "alice"), protocol.NewAmount(61))
	require.ErrorIs(t, err, errors.ArithmeticError)
	requireBalance(t, st, "alice", 60)
	requireBalance(t, st, "vault1", 40)
}

func TestLedgerQueries(t *testing.T) {
	token, st := newTestLedger(t)
	_, err := token.Mint(st, execCtx("vault1", "alice"), "alice", protocol.NewAmount(100))
	require.NoError(t, err)

	balance, err := token.QueryBalance(st, nil, "alice")
	require.NoError(t, err)
	require.Equal(t, "100", balance.String())

	balance, err = token.QueryBalance(st, nil, "nobody")
	require.NoError(t, err)
	require.True(t, balance.IsZero())

	supply, err := token.QueryTotalSupply(st, nil)
	require.NoError(t, err)
	require.Equal(t, "100", supply.String())
}

func TestLedgerTransferFromUnsupported(t *testing.T) {
	token, st := newTestLedger(t)
	_, err := TransferFrom(token, st, execCtx("vault1", "alice"), "alice", "bob", protocol.NewAmount(1))
	require.ErrorIs(t, err, errors.NotSupported)
}
