// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package denom

import (
	"encoding/json"
	"strings"
)

// Prefix is the literal first segment of every token-factory denom.
const Prefix = "factory"

// Denom identifies a native denom created through a token-factory module. The
// canonical string form is `factory/{owner}/{subdenom}`. Two denoms are equal
// iff their owner and subdenom are equal; the canonical string is a derived,
// re-parseable projection.
type Denom struct {
	Owner    string
	Subdenom string
}

// New constructs a denom from an owner and subdenom. New does not validate
// its arguments; use Parse to validate a full denom string.
func New(owner, subdenom string) Denom {
	return Denom{Owner: owner, Subdenom: subdenom}
}

// Parse parses the string as a token-factory denom. The string must consist
// of exactly three slash-separated segments, the first of which must be
// `factory`, and the owner and subdenom must be non-empty.
func Parse(s string) (Denom, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Denom{}, wrongSegmentCount(s)
	}
	if parts[0] != Prefix {
		return Denom{}, wrongPrefix(s)
	}
	if parts[1] == "" {
		return Denom{}, missingOwner(s)
	}
	if parts[2] == "" {
		return Denom{}, missingSubdenom(s)
	}
	return Denom{Owner: parts[1], Subdenom: parts[2]}, nil
}

// MustParse calls Parse and panics if it returns an error.
func MustParse(s string) Denom {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the canonical form, `factory/{owner}/{subdenom}`.
func (d Denom) String() string {
	return Prefix + "/" + d.Owner + "/" + d.Subdenom
}

// Equal reports whether the denoms have the same owner and subdenom.
func (d Denom) Equal(e Denom) bool {
	return d.Owner == e.Owner && d.Subdenom == e.Subdenom
}

// IsZero reports whether the denom is the zero value.
func (d Denom) IsZero() bool {
	return d.Owner == "" && d.Subdenom == ""
}

// MarshalJSON marshals the denom as its canonical string.
func (d Denom) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON unmarshals and validates a canonical denom string.
func (d *Denom) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	e, err := Parse(s)
	if err != nil {
		return err
	}
	*d = e
	return nil
}
