// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"
	"math/big"

	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
)

// maxAmount is 2^128 - 1, the largest representable amount.
var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Amount is a non-negative 128-bit integer token quantity. Arithmetic is
// checked: overflow and underflow are hard failures, never wrapping or
// saturation. Amount marshals to JSON as a decimal string.
type Amount struct {
	value big.Int
}

// NewAmount returns an amount for the given value.
func NewAmount(v uint64) Amount {
	var a Amount
	a.value.SetUint64(v)
	return a
}

// ZeroAmount returns the zero amount.
func ZeroAmount() Amount { return Amount{} }

// AmountFromString parses a decimal string as an amount.
func AmountFromString(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errors.EncodingError.WithFormat("%q is not a valid amount", s)
	}
	return amountFromBig(v)
}

// AmountFromBig converts a big integer to an amount. The value must be
// non-negative and must not exceed 2^128 - 1.
func AmountFromBig(v *big.Int) (Amount, error) {
	return amountFromBig(v)
}

func amountFromBig(v *big.Int) (Amount, error) {
	if v.Sign() < 0 {
		return Amount{}, errors.ValidationError.WithFormat("amount cannot be negative")
	}
	if v.Cmp(maxAmount) > 0 {
		return Amount{}, errors.ArithmeticError.WithFormat("amount exceeds 128 bits")
	}
	var a Amount
	a.value.Set(v)
	return a, nil
}

// Add returns a + b, or an arithmetic error on overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	v := new(big.Int).Add(&a.value, &b.value)
	if v.Cmp(maxAmount) > 0 {
		return Amount{}, errors.ArithmeticError.WithFormat("%v + %v overflows", &a.value, &b.value)
	}
	var c Amount
	c.value.Set(v)
	return c, nil
}

// Sub returns a - b, or an arithmetic error on underflow.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.value.Cmp(&b.value) < 0 {
		return Amount{}, errors.ArithmeticError.WithFormat("%v - %v underflows", &a.value, &b.value)
	}
	var c Amount
	c.value.Sub(&a.value, &b.value)
	return c, nil
}

// Cmp compares a to b, returning -1, 0, or +1.
func (a Amount) Cmp(b Amount) int { return a.value.Cmp(&b.value) }

// Equal reports whether a == b.
func (a Amount) Equal(b Amount) bool { return a.value.Cmp(&b.value) == 0 }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.value.Sign() == 0 }

// BigInt returns a copy of the amount as a big integer.
func (a Amount) BigInt() *big.Int { return new(big.Int).Set(&a.value) }

// String returns the amount as a decimal string.
func (a Amount) String() string { return a.value.String() }

// MarshalJSON marshals the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value.String())
}

// UnmarshalJSON unmarshals the amount from a decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	b, err := AmountFromString(s)
	if err != nil {
		return err
	}
	*a = b
	return nil
}
