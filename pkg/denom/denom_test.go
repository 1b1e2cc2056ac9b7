// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package denom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
)

func TestParse(t *testing.T) {
	cases := []struct {
		s      string
		expect interface{}
	}{
		{"factory/alice/vault", Denom{Owner: "alice", Subdenom: "vault"}},
		{"factory/osmo1xyz/uvault", Denom{Owner: "osmo1xyz", Subdenom: "uvault"}},
		{"factory/alice", ErrWrongSegmentCount},
		{"factory/alice/vault/extra", ErrWrongSegmentCount},
		{"wrong/alice/vault", ErrWrongPrefix},
		{"factory//vault", ErrMissingOwner},
		{"factory/alice/", ErrMissingSubdenom},
		{"", ErrWrongSegmentCount},
		{"uosmo", ErrWrongSegmentCount},
	}

	for _, c := range cases {
		t.Run("", func(t *testing.T) {
			d, err := Parse(c.s)
			if e, ok := c.expect.(error); ok {
				require.Error(t, err)
				require.ErrorIs(t, err, e)
				require.ErrorIs(t, err, errors.ValidationError)
			} else {
				require.NoError(t, err)
				require.Equal(t, c.expect, d)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []Denom{
		{Owner: "alice", Subdenom: "vault"},
		{Owner: "osmo1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzm60ye", Subdenom: "apVault"},
		{Owner: "neutron1abc", Subdenom: "u.vault-2"},
	}

	for _, c := range cases {
		t.Run(c.String(), func(t *testing.T) {
			d, err := Parse(c.String())
			require.NoError(t, err)
			require.True(t, d.Equal(c))
		})
	}
}

func TestJSON(t *testing.T) {
	d := New("alice", "vault")
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"factory/alice/vault"`, string(b))

	var e Denom
	require.NoError(t, json.Unmarshal(b, &e))
	require.True(t, d.Equal(e))

	require.Error(t, json.Unmarshal([]byte(`"factory/alice"`), &e))
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { MustParse("factory/alice/vault") })
	require.Panics(t, func() { MustParse("factory/alice") })
}
