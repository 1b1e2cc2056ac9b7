// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "encoding/json"

// Execute payloads for a cw20-compatible fungible-token contract. Exactly one
// field must be set.
type Cw20ExecuteMsg struct {
	Transfer     *Cw20Transfer     `json:"transfer,omitempty"`
	TransferFrom *Cw20TransferFrom `json:"transfer_from,omitempty"`
	Send         *Cw20Send         `json:"send,omitempty"`
	Mint         *Cw20Mint         `json:"mint,omitempty"`
	Burn         *Cw20Burn         `json:"burn,omitempty"`
}

type Cw20Transfer struct {
	Recipient string `json:"recipient"`
	Amount    Amount `json:"amount"`
}

type Cw20TransferFrom struct {
	Owner     string `json:"owner"`
	Recipient string `json:"recipient"`
	Amount    Amount `json:"amount"`
}

type Cw20Send struct {
	Contract string          `json:"contract"`
	Amount   Amount          `json:"amount"`
	Msg      json.RawMessage `json:"msg"`
}

type Cw20Mint struct {
	Recipient string `json:"recipient"`
	Amount    Amount `json:"amount"`
}

type Cw20Burn struct {
	Amount Amount `json:"amount"`
}

// Query payloads for a cw20-compatible contract. Exactly one field must be
// set.
type Cw20QueryMsg struct {
	Balance   *Cw20BalanceQuery   `json:"balance,omitempty"`
	TokenInfo *Cw20TokenInfoQuery `json:"token_info,omitempty"`
}

type Cw20BalanceQuery struct {
	Address string `json:"address"`
}

type Cw20TokenInfoQuery struct{}

type Cw20BalanceResponse struct {
	Balance Amount `json:"balance"`
}

type Cw20TokenInfoResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply Amount `json:"total_supply"`
}

// Cw20InstantiateMsg initializes a new cw20 contract instance.
type Cw20InstantiateMsg struct {
	Name            string     `json:"name"`
	Symbol          string     `json:"symbol"`
	Decimals        uint8      `json:"decimals"`
	InitialBalances []Cw20Coin `json:"initial_balances"`
	Mint            *Cw20Minter `json:"mint,omitempty"`
}

type Cw20Coin struct {
	Address string `json:"address"`
	Amount  Amount `json:"amount"`
}

type Cw20Minter struct {
	Minter string  `json:"minter"`
	Cap    *Amount `json:"cap,omitempty"`
}

// Cw20ReceiveMsg is the hook a `send` delivers to the receiving contract.
type Cw20ReceiveMsg struct {
	Sender string          `json:"sender"`
	Amount Amount          `json:"amount"`
	Msg    json.RawMessage `json:"msg"`
}
