// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"encoding/json"

	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

const eventTypeLedger = "vault_token/ledger"

// Ledger is a token kept entirely in the hosting contract's own storage: a
// per-holder balance map plus a total-supply counter. Its identity is known
// synchronously, so Instantiate persists directly and the reply protocol is
// never involved.
//
// Mint is not gated by a minter record. Any caller of Mint can mint; gating
// who may call it is the surrounding contract's responsibility.
type Ledger struct{}

var _ VaultToken = (*Ledger)(nil)

// LedgerInitParams initializes a ledger token.
type LedgerInitParams struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Identity implements VaultToken.
func (*Ledger) Identity() Identity { return &LedgerIdentity{} }

// Instantiate validates the init params, persists the token metadata and
// identity, and returns a confirmation event. No host messages are needed.
func (l *Ledger) Instantiate(st *State, ctx *protocol.ExecContext, initParams []byte) (*protocol.Effects, error) {
	params := new(LedgerInitParams)
	err := json.Unmarshal(initParams, params)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("unmarshal init params: %w", err)
	}

	if params.Name == "" {
		return nil, errors.ValidationError.With("name must not be empty")
	}
	if params.Symbol == "" {
		return nil, errors.ValidationError.With("symbol must not be empty")
	}
	if params.Decimals > 18 {
		return nil, errors.ValidationError.With("decimals must be in range 0 to 18")
	}

	err = st.SaveLedgerInfo(&LedgerInfo{Name: params.Name, Symbol: params.Symbol, Decimals: params.Decimals})
	if err != nil {
		return nil, err
	}
	err = st.SaveIdentity(l.Identity())
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().AddEvent(protocol.NewEvent(eventTypeLedger,
		protocol.Attr("action", "instantiate"),
		protocol.Attr("name", params.Name),
		protocol.Attr("symbol", params.Symbol),
	)), nil
}

// Mint credits the recipient and grows the total supply.
func (l *Ledger) Mint(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	if amount.IsZero() {
		return nil, errors.ValidationError.With("invalid zero amount")
	}

	_, err := st.LoadLedgerInfo()
	if err != nil {
		return nil, errors.UnknownError.WithFormat("load token info: %w", err)
	}

	supply, err := st.LoadSupply()
	if err != nil {
		return nil, err
	}
	supply, err = supply.Add(amount)
	if err != nil {
		return nil, err
	}

	balance, err := st.Balance(recipient)
	if err != nil {
		return nil, err
	}
	balance, err = balance.Add(amount)
	if err != nil {
		return nil, err
	}

	err = st.SaveSupply(supply)
	if err != nil {
		return nil, err
	}
	err = st.SetBalance(recipient, balance)
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().AddEvent(protocol.NewEvent(eventTypeLedger,
		protocol.Attr("action", "mint"),
		protocol.Attr("to", recipient),
		protocol.Attr("amount", amount.String()),
	)), nil
}

// Burn debits the contract's own balance and shrinks the total supply.
func (l *Ledger) Burn(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	balance, err := st.Balance(ctx.Contract)
	if err != nil {
		return nil, err
	}
	balance, err = balance.Sub(amount)
	if err != nil {
		return nil, err
	}

	supply, err := st.LoadSupply()
	if err != nil {
		return nil, err
	}
	supply, err = supply.Sub(amount)
	if err != nil {
		return nil, err
	}

	err = st.SetBalance(ctx.Contract, balance)
	if err != nil {
		return nil, err
	}
	err = st.SaveSupply(supply)
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().AddEvent(protocol.NewEvent(eventTypeLedger,
		protocol.Attr("action", "burn"),
		protocol.Attr("amount", amount.String()),
	)), nil
}

// Transfer moves tokens from the sender to the recipient within the ledger.
func (l *Ledger) Transfer(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	err := l.move(st, ctx.Sender, recipient, amount)
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().AddEvent(protocol.NewEvent(eventTypeLedger,
		protocol.Attr("action", "transfer"),
		protocol.Attr("from", ctx.Sender),
		protocol.Attr("to", recipient),
		protocol.Attr("amount", amount.String()),
	)), nil
}

// Send moves tokens from the sender to the receiving contract and delivers
// the receive hook.
func (l *Ledger) Send(st *State, ctx *protocol.ExecContext, contract string, amount protocol.Amount, msg []byte) (*protocol.Effects, error) {
	err := l.move(st, ctx.Sender, contract, amount)
	if err != nil {
		return nil, err
	}

	hook, err := json.Marshal(&protocol.Cw20ReceiveMsg{Sender: ctx.Sender, Amount: amount, Msg: msg})
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}

	return protocol.NewEffects().
		AddMessage(&protocol.ExecuteContract{Contract: contract, Payload: hook}).
		AddEvent(protocol.NewEvent(eventTypeLedger,
			protocol.Attr("action", "send"),
			protocol.Attr("from", ctx.Sender),
			protocol.Attr("to", contract),
			protocol.Attr("amount", amount.String()),
		)), nil
}

// Receive performs the internal transfer from the sender's balance to the
// contract's balance.
func (l *Ledger) Receive(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	err := l.move(st, ctx.Sender, ctx.Contract, amount)
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().AddEvent(protocol.NewEvent(eventTypeLedger,
		protocol.Attr("action", "receive"),
		protocol.Attr("from", ctx.Sender),
		protocol.Attr("amount", amount.String()),
	)), nil
}

// QueryBalance implements BalanceQuerier.
func (l *Ledger) QueryBalance(st *State, q Querier, address string) (protocol.Amount, error) {
	return st.Balance(address)
}

// QueryTotalSupply implements SupplyQuerier.
func (l *Ledger) QueryTotalSupply(st *State, q Querier) (protocol.Amount, error) {
	return st.LoadSupply()
}

func (l *Ledger) move(st *State, from, to string, amount protocol.Amount) error {
	fromBal, err := st.Balance(from)
	if err != nil {
		return err
	}
	fromBal, err = fromBal.Sub(amount)
	if err != nil {
		return err
	}

	// A self-move must still fail on insufficient balance but must not
	// double-count
	if from == to {
		return nil
	}

	toBal, err := st.Balance(to)
	if err != nil {
		return err
	}
	toBal, err = toBal.Add(amount)
	if err != nil {
		return err
	}

	err = st.SetBalance(from, fromBal)
	if err != nil {
		return err
	}
	return st.SetBalance(to, toBal)
}
