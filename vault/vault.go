// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package vault implements a polymorphic vault token: one logical token per
// contract instance, backed by a delegated fungible-token contract, a
// contract-local ledger, or a native denom minted through a token-factory
// module.
//
// Every operation returns a [protocol.Effects] describing the host messages
// to dispatch and the events to record; the package never performs host side
// effects itself. Backends whose identity is not known until the host
// executes the creation sub-request use the two-phase instantiate/reply
// protocol implemented by [HandleReply].
package vault

import (
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

// Querier performs read-only queries against the host. The host provides the
// implementation.
type Querier interface {
	// QuerySmart performs a smart query against a contract.
	QuerySmart(contract string, req []byte) ([]byte, error)

	// QueryBalance returns an address's balance of a native denom.
	QueryBalance(address, denom string) (protocol.Amount, error)

	// QuerySupply returns the total supply of a native denom.
	QuerySupply(denom string) (protocol.Amount, error)
}

// Each capability below is independent: a backend implements only what it can
// support. Operations that take a *State persist through that explicit
// handle; there is no ambient storage key.

// An Instantiator creates the backend's token. For backends whose identity is
// assigned by the host, the returned effects carry a correlated sub-request
// and the identity is persisted later by [HandleReply]; for the rest the
// identity is persisted before Instantiate returns.
type Instantiator interface {
	Instantiate(st *State, ctx *protocol.ExecContext, initParams []byte) (*protocol.Effects, error)
}

// A Minter mints new tokens to a recipient.
type Minter interface {
	Mint(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error)
}

// A Burner burns tokens from the contract's balance.
type Burner interface {
	Burn(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error)
}

// A Transferrer moves tokens from the contract to a recipient.
type Transferrer interface {
	Transfer(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error)
}

// A TransferrerFrom moves tokens between third parties using a delegated
// approval.
type TransferrerFrom interface {
	TransferFrom(st *State, ctx *protocol.ExecContext, from, to string, amount protocol.Amount) (*protocol.Effects, error)
}

// A Sender transfers tokens to a contract and delivers a receive hook.
type Sender interface {
	Send(st *State, ctx *protocol.ExecContext, contract string, amount protocol.Amount, msg []byte) (*protocol.Effects, error)
}

// A Receiver validates that the given amount has been made available to the
// contract, or makes it so for ledger tokens. The attached amount must match
// exactly; overpayment is not tolerated.
type Receiver interface {
	Receive(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error)
}

// A BalanceQuerier reports an address's balance. Queries never mutate state.
type BalanceQuerier interface {
	QueryBalance(st *State, q Querier, address string) (protocol.Amount, error)
}

// A SupplyQuerier reports the token's total supply. Queries never mutate
// state.
type SupplyQuerier interface {
	QueryTotalSupply(st *State, q Querier) (protocol.Amount, error)
}

// TransferFrom invokes the token's delegated transfer if the backend has a
// delegated-approval concept, and fails with a not-supported error otherwise.
func TransferFrom(t VaultToken, st *State, ctx *protocol.ExecContext, from, to string, amount protocol.Amount) (*protocol.Effects, error) {
	tf, ok := t.(TransferrerFrom)
	if !ok {
		return nil, errors.NotSupported.WithFormat("%v tokens do not support transfer_from", t.Identity().Kind())
	}
	return tf.TransferFrom(st, ctx, from, to, amount)
}

// VaultToken is the combination of capabilities every backend provides.
// Operations a backend structurally cannot perform return
// [errors.NotSupported].
type VaultToken interface {
	Instantiator
	Minter
	Burner
	Transferrer
	Sender
	Receiver
	BalanceQuerier
	SupplyQuerier

	// Identity returns the value that names this token backend instance.
	Identity() Identity
}
