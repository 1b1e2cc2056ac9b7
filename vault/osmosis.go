// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"encoding/json"
	"strings"

	"gitlab.com/accumulatenetwork/vault-token/pkg/denom"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

const eventTypeOsmosis = "vault_token/osmosis"

// OsmosisDenom is a native denom created through the Osmosis token-factory
// module. Only the denom's owner can mint or burn it. The generated denom
// string is not known until the host executes the create-denom sub-request,
// so instantiation goes through the reply protocol. Osmosis supports a
// chain-level supply query, so no supply is tracked locally.
type OsmosisDenom struct {
	Denom denom.Denom
}

var _ VaultToken = (*OsmosisDenom)(nil)

// NewOsmosisDenom returns the backend for an already-created denom.
func NewOsmosisDenom(owner, subdenom string) *OsmosisDenom {
	return &OsmosisDenom{Denom: denom.New(owner, subdenom)}
}

// DenomInitParams initializes a factory denom. The owner is the contract
// itself; only the subdenom is chosen by the caller.
type DenomInitParams struct {
	Subdenom string `json:"subdenom"`
}

func parseDenomInitParams(initParams []byte) (*DenomInitParams, error) {
	params := new(DenomInitParams)
	err := json.Unmarshal(initParams, params)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("unmarshal init params: %w", err)
	}
	if params.Subdenom == "" {
		return nil, errors.ValidationError.With("subdenom must not be empty")
	}
	if strings.Contains(params.Subdenom, "/") {
		return nil, errors.ValidationError.WithFormat("subdenom %q must not contain '/'", params.Subdenom)
	}
	return params, nil
}

// Identity implements VaultToken.
func (d *OsmosisDenom) Identity() Identity {
	return &DenomIdentity{Chain: Osmosis, Denom: d.Denom}
}

// Instantiate records a pending instantiation and returns the create-denom
// sub-request. The generated denom is extracted from the host's reply by
// HandleReply.
func (d *OsmosisDenom) Instantiate(st *State, ctx *protocol.ExecContext, initParams []byte) (*protocol.Effects, error) {
	params, err := parseDenomInitParams(initParams)
	if err != nil {
		return nil, err
	}

	err = st.SavePending(&PendingInstantiation{
		ReplyID:  ReplyIDDenomCreated,
		Kind:     KindDenom.String(),
		Chain:    Osmosis.String(),
		Owner:    ctx.Contract,
		Subdenom: params.Subdenom,
	})
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

	return protocol.NewEffects().AddSubMsg(protocol.ReplyAlwaysOn(ReplyIDDenomCreated, msg)), nil
}

// Mint mints to the contract's account and forwards the coins to the
// recipient.
func (d *OsmosisDenom) Mint(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	if amount.IsZero() {
		return nil, errors.ValidationError.With("invalid zero amount")
	}
	if ctx.Contract != d.Denom.Owner {
		return nil, errors.Unauthorized.WithFormat("%s is not the owner of %s", ctx.Contract, d.Denom)
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
		AddEvent(protocol.NewEvent(eventTypeOsmosis,
			protocol.Attr("action", "mint"),
			protocol.Attr("denom", d.Denom.String()),
			protocol.Attr("amount", amount.String()),
			protocol.Attr("recipient", recipient),
		)), nil
}

// Burn burns from the contract's account.
func (d *OsmosisDenom) Burn(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	if ctx.Contract != d.Denom.Owner {
		return nil, errors.Unauthorized.WithFormat("%s is not the owner of %s", ctx.Contract, d.Denom)
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
		AddEvent(protocol.NewEvent(eventTypeOsmosis,
			protocol.Attr("action", "burn"),
			protocol.Attr("denom", d.Denom.String()),
			protocol.Attr("amount", amount.String()),
		)), nil
}

// Transfer is a plain native value transfer.
func (d *OsmosisDenom) Transfer(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	return protocol.NewEffects().AddMessage(&protocol.BankSend{
		ToAddress: recipient,
		Amount:    []protocol.Coin{protocol.NewCoin(d.Denom.String(), amount)},
	}), nil
}

// Send calls the receiving contract with the coins attached as funds.
func (d *OsmosisDenom) Send(st *State, ctx *protocol.ExecContext, contract string, amount protocol.Amount, msg []byte) (*protocol.Effects, error) {
	return protocol.NewEffects().AddMessage(&protocol.ExecuteContract{
		Contract: contract,
		Payload:  msg,
		Funds:    []protocol.Coin{protocol.NewCoin(d.Denom.String(), amount)},
	}), nil
}

// Receive validates that exactly the required amount was attached to the
// call. Both overpayment and underpayment fail.
func (d *OsmosisDenom) Receive(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	return receiveExact(ctx, d.Denom.String(), amount)
}

// QueryBalance asks the host for an address's balance of the denom.
func (d *OsmosisDenom) QueryBalance(st *State, q Querier, address string) (protocol.Amount, error) {
	return q.QueryBalance(address, d.Denom.String())
}

// QueryTotalSupply asks the host for the denom's total supply.
func (d *OsmosisDenom) QueryTotalSupply(st *State, q Querier) (protocol.Amount, error) {
	return q.QuerySupply(d.Denom.String())
}

// receiveExact checks that the attached funds contain exactly the required
// coin.
func receiveExact(ctx *protocol.ExecContext, denom string, amount protocol.Amount) (*protocol.Effects, error) {
	required := protocol.NewCoin(denom, amount)
	attached, ok := protocol.FindCoin(ctx.Funds, denom)
	if !ok {
		return nil, errors.AmountMismatch.WithFormat("expected to receive %s, got nothing", required)
	}
	if !attached.Equal(required) {
		return nil, errors.AmountMismatch.WithFormat("expected to receive %s, got %s", required, attached)
	}
	return protocol.NewEffects(), nil
}
