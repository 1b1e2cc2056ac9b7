// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// Coin is an amount of a specific native denom.
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

// NewCoin constructs a coin.
func NewCoin(denom string, amount Amount) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// Equal reports whether the coins have the same denom and amount.
func (c Coin) Equal(d Coin) bool {
	return c.Denom == d.Denom && c.Amount.Equal(d.Amount)
}

// String returns `{amount}{denom}`.
func (c Coin) String() string { return c.Amount.String() + c.Denom }

// FindCoin returns the coin with the given denom, if present.
func FindCoin(coins []Coin, denom string) (Coin, bool) {
	for _, c := range coins {
		if c.Denom == denom {
			return c, true
		}
	}
	return Coin{}, false
}
