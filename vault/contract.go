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

const eventTypeContract = "vault_token/contract"

// Contract delegates every operation to a separately deployed cw20-compatible
// token contract. Each mutating operation translates 1:1 into a single
// outbound message addressed to that contract; queries are read-only calls.
// The remembered address is the only local state.
type Contract struct {
	Address string
}

var _ VaultToken = (*Contract)(nil)
var _ TransferrerFrom = (*Contract)(nil)

// ContractInitParams initializes a delegated contract token. The host assigns
// the contract's address, so instantiation goes through the reply protocol.
type ContractInitParams struct {
	CodeID  uint64                      `json:"code_id"`
	Label   string                      `json:"label"`
	Admin   string                      `json:"admin,omitempty"`
	InitMsg protocol.Cw20InstantiateMsg `json:"init_msg"`
}

// Identity implements VaultToken.
func (c *Contract) Identity() Identity { return &ContractIdentity{Address: c.Address} }

// Instantiate records a pending instantiation and returns the contract
// creation sub-request. The assigned address is not known until the host
// replies; HandleReply persists it.
func (c *Contract) Instantiate(st *State, ctx *protocol.ExecContext, initParams []byte) (*protocol.Effects, error) {
	params := new(ContractInitParams)
	err := json.Unmarshal(initParams, params)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("unmarshal init params: %w", err)
	}

	if params.CodeID == 0 {
		return nil, errors.ValidationError.With("code id must not be zero")
	}
	if params.Label == "" {
		return nil, errors.ValidationError.With("label must not be empty")
	}

	payload, err := json.Marshal(&params.InitMsg)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}

	err = st.SavePending(&PendingInstantiation{
		ReplyID: ReplyIDContractCreated,
		Kind:    KindContract.String(),
	})
	if err != nil {
		return nil, err
	}

	return protocol.NewEffects().AddSubMsg(protocol.ReplyAlwaysOn(ReplyIDContractCreated, &protocol.InstantiateContract{
		CodeID:  params.CodeID,
		Label:   params.Label,
		Admin:   params.Admin,
		Payload: payload,
	})), nil
}

// Mint asks the token contract to mint to the recipient. The token contract
// enforces its own minter rules.
func (c *Contract) Mint(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	if amount.IsZero() {
		return nil, errors.ValidationError.With("invalid zero amount")
	}
	return c.execute(&protocol.Cw20ExecuteMsg{Mint: &protocol.Cw20Mint{Recipient: recipient, Amount: amount}},
		protocol.Attr("action", "mint"),
		protocol.Attr("to", recipient),
		protocol.Attr("amount", amount.String()),
	)
}

// Burn asks the token contract to burn from the vault contract's balance.
func (c *Contract) Burn(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	return c.execute(&protocol.Cw20ExecuteMsg{Burn: &protocol.Cw20Burn{Amount: amount}},
		protocol.Attr("action", "burn"),
		protocol.Attr("amount", amount.String()),
	)
}

// Transfer asks the token contract to move tokens from the vault contract's
// balance to the recipient.
func (c *Contract) Transfer(st *State, ctx *protocol.ExecContext, recipient string, amount protocol.Amount) (*protocol.Effects, error) {
	return c.execute(&protocol.Cw20ExecuteMsg{Transfer: &protocol.Cw20Transfer{Recipient: recipient, Amount: amount}},
		protocol.Attr("action", "transfer"),
		protocol.Attr("to", recipient),
		protocol.Attr("amount", amount.String()),
	)
}

// TransferFrom moves tokens between third parties using the token contract's
// delegated-approval mechanism.
func (c *Contract) TransferFrom(st *State, ctx *protocol.ExecContext, from, to string, amount protocol.Amount) (*protocol.Effects, error) {
	return c.execute(&protocol.Cw20ExecuteMsg{TransferFrom: &protocol.Cw20TransferFrom{Owner: from, Recipient: to, Amount: amount}},
		protocol.Attr("action", "transfer_from"),
		protocol.Attr("from", from),
		protocol.Attr("to", to),
		protocol.Attr("amount", amount.String()),
	)
}

// Send transfers tokens to a contract and delivers the cw20 receive hook.
func (c *Contract) Send(st *State, ctx *protocol.ExecContext, contract string, amount protocol.Amount, msg []byte) (*protocol.Effects, error) {
	return c.execute(&protocol.Cw20ExecuteMsg{Send: &protocol.Cw20Send{Contract: contract, Amount: amount, Msg: msg}},
		protocol.Attr("action", "send"),
		protocol.Attr("to", contract),
		protocol.Attr("amount", amount.String()),
	)
}

// Receive pulls the required amount from the sender into the vault contract's
// balance. A cw20 balance cannot ride along as attached funds, so receiving
// uses the contract's delegated-approval mechanism; the sender must have
// approved the vault contract for at least the amount.
func (c *Contract) Receive(st *State, ctx *protocol.ExecContext, amount protocol.Amount) (*protocol.Effects, error) {
	return c.execute(&protocol.Cw20ExecuteMsg{TransferFrom: &protocol.Cw20TransferFrom{Owner: ctx.Sender, Recipient: ctx.Contract, Amount: amount}},
		protocol.Attr("action", "receive"),
		protocol.Attr("from", ctx.Sender),
		protocol.Attr("amount", amount.String()),
	)
}

// QueryBalance asks the token contract for an address's balance.
func (c *Contract) QueryBalance(st *State, q Querier, address string) (protocol.Amount, error) {
	req, err := json.Marshal(&protocol.Cw20QueryMsg{Balance: &protocol.Cw20BalanceQuery{Address: address}})
	if err != nil {
		return protocol.Amount{}, errors.EncodingError.Wrap(err)
	}

	res, err := q.QuerySmart(c.Address, req)
	if err != nil {
		return protocol.Amount{}, errors.UnknownError.WithFormat("query %s: %w", c.Address, err)
	}

	var balance protocol.Cw20BalanceResponse
	err = json.Unmarshal(res, &balance)
	if err != nil {
		return protocol.Amount{}, errors.EncodingError.WithFormat("unmarshal balance response: %w", err)
	}
	return balance.Balance, nil
}

// QueryTotalSupply asks the token contract for its total supply.
func (c *Contract) QueryTotalSupply(st *State, q Querier) (protocol.Amount, error) {
	req, err := json.Marshal(&protocol.Cw20QueryMsg{TokenInfo: &protocol.Cw20TokenInfoQuery{}})
	if err != nil {
		return protocol.Amount{}, errors.EncodingError.Wrap(err)
	}

	res, err := q.QuerySmart(c.Address, req)
	if err != nil {
		return protocol.Amount{}, errors.UnknownError.WithFormat("query %s: %w", c.Address, err)
	}

	var info protocol.Cw20TokenInfoResponse
	err = json.Unmarshal(res, &info)
	if err != nil {
		return protocol.Amount{}, errors.EncodingError.WithFormat("unmarshal token info response: %w", err)
	}
	return info.TotalSupply, nil
}

func (c *Contract) execute(msg *protocol.Cw20ExecuteMsg, attrs ...protocol.Attribute) (*protocol.Effects, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}

	return protocol.NewEffects().
		AddMessage(&protocol.ExecuteContract{Contract: c.Address, Payload: payload}).
		AddEvent(protocol.NewEvent(eventTypeContract, attrs...)), nil
}
