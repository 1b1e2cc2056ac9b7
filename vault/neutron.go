// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"gitlab.com/accumulatenetwork/vault-token/pkg/denom"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

const eventTypeNeutron = "vault_token/neutron"

// NeutronDenom is a native denom created through Neutron's token-factory
// module. Neutron's factory derives the denom deterministically from the
// creator and subdenom, so the identity is known before the create-denom
// message executes and instantiation persists synchronously, without the
// reply protocol. Neutron lacks a chain-level supply query, so the total
// supply is tracked in local state alongside every mint and burn.
type NeutronDenom struct {
	Denom denom.Denom
}

var _ VaultToken = (*NeutronDenom)(nil)

// NewNeutronDenom returns the backend for an already-created denom.
func NewNeutronDenom(owner, subdenom string) *NeutronDenom {
	return &NeutronDenom{Denom: denom.New(owner, subdenom)}
}

// Identity implements VaultToken.
func (d *NeutronDenom) Identity() Identity {
	return &DenomIdentity{Chain: Neutron, Denom: d.Denom}
}

// Instantiate persists the identity and returns the create-denom message. The
// denom's owner is always the contract itself, so no reply is needed to learn
// the generated denom.
func (d *NeutronDenom) Instantiate(st *State, ctx *protocol.ExecContext, initParams []byte) (*protocol.Effects, error) {
	params, err := parseDenomInitParams(initParams)
	if err != nil {
		return nil, err
	}

	d.Denom = denom.New(ctx.Contract, params.Subdenom)
	err = st.SaveIdentity(d.Identity())
	if err != nil {
		return nil, err
	}

	msg, err := protocol.EncodeModuleMsg(protocol.TypeURLCreateDenom, &protocol.MsgCreateDenom{
		Sender:   ctx.Contract,
		Subdenom: params.Subdenom,
	})
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().
		AddMessage(msg).
		AddEvent(protocol.NewEvent(eventTypeNeutron,
			protocol.Attr("action", "instantiate"),
			protocol.Attr("denom", d.Denom.String()),
		)), nil
}

// Mint mints to the contract's account, forwards the coins to the recipient,
// and grows the locally tracked supply.
func (d *NeutronDenom) Mint(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	if amount.IsZero() {
		return nil, errors.ValidationError.With("invalid zero amount")
	}
	if ctx.Contract != d.Denom.Owner {
		return nil, errors.Unauthorized.WithFormat("%s is not the owner of %s", ctx.Contract, d.Denom)
	}

	supply, err := st.LoadSupply()
	if err != nil {
		return nil, err
	}
	supply, err = supply.Add(amount)
	if err != nil {
		return nil, err
	}
	err = st.SaveSupply(supply)
	if err != nil {
		return nil, err
	}

	mint, err := protocol.EncodeModuleMsg(protocol.TypeURLMint, &protocol.MsgMint{
		Sender: ctx.Contract,
		Amount: &protocol.ProtoCoin{Denom: d.Denom.String(), Amount: amount.String()},
	})
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().
		AddMessage(mint).
		AddMessage(&protocol.BankSend{
			ToAddress: recipient,
			Amount:    []protocol.Coin{protocol.NewCoin(d.Denom.String(), amount)},
		}).
		AddEvent(protocol.NewEvent(eventTypeNeutron,
			protocol.Attr("action", "mint"),
			protocol.Attr("denom", d.Denom.String()),
			protocol.Attr("amount", amount.String()),
			protocol.Attr("recipient", recipient),
		)), nil
}

// Burn burns from the contract's account and shrinks the locally tracked
// supply.
func (d *NeutronDenom) Burn(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	if ctx.Contract != d.Denom.Owner {
		return nil, errors.Unauthorized.WithFormat("%s is not the owner of %s", ctx.Contract, d.Denom)
	}

	supply, err := st.LoadSupply()
	if err != nil {
		return nil, err
	}
	supply, err = supply.Sub(amount)
	if err != nil {
		return nil, err
	}
	err = st.SaveSupply(supply)
	if err != nil {
		return nil, err
	}

	burn, err := protocol.EncodeModuleMsg(protocol.TypeURLBurn, &protocol.MsgBurn{
		Sender: ctx.Contract,
		Amount: &protocol.ProtoCoin{Denom: d.Denom.String(), Amount: amount.String()},
	})
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().
		AddMessage(burn).
		AddEvent(protocol.NewEvent(eventTypeNeutron,
			protocol.Attr("action", "burn"),
			protocol.Attr("denom", d.Denom.String()),
			protocol.Attr("amount", amount.String()),
		)), nil
}

// Transfer is a plain native value transfer.
func (d *NeutronDenom) Transfer(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	return protocol.NewEffects().AddMessage(&protocol.BankSend{
		ToAddress: recipient,
		Amount:    []protocol.Coin{protocol.NewCoin(d.Denom.String(), amount)},
	}), nil
}

// Send calls the receiving contract with the coins attached as funds.
func (d *NeutronDenom) Send(st *State, ctx *protocol.ExecContext, contract string, amount protocol.Amount, msg []byte) (*protocol.Effects, error) {
	return protocol.NewEffects().AddMessage(&protocol.ExecuteContract{
		Contract: contract,
		Payload:  msg,
		Funds:    []protocol.Coin{protocol.NewCoin(d.Denom.String(), amount)},
	}), nil
}

// Receive validates that exactly the required amount was attached to the
// call. Both overpayment and underpayment fail.
func (d *NeutronDenom) Receive(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	return receiveExact(ctx, d.Denom.String(), amount)
}

// QueryBalance asks the host for an address's balance of the denom.
func (d *NeutronDenom) QueryBalance(st *State, q Querier, address string) (protocol.Amount, error) {
	return q.QueryBalance(address, d.Denom.String())
}

// QueryTotalSupply reports the locally tracked supply.
func (d *NeutronDenom) QueryTotalSupply(st *State, q Querier) (protocol.Amount, error) {
	return st.LoadSupply()
}
