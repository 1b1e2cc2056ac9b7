// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"encoding/json"

	"gitlab.com/accumulatenetwork/vault-token/pkg/denom"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
)

// Kind classifies a token identity.
type Kind int

const (
	// KindContract is a token delegated to a separately deployed contract.
	KindContract Kind = iota + 1
	// KindLedger is a token kept in the hosting contract's own ledger.
	KindLedger
	// KindDenom is a native denom managed by a token-factory module.
	KindDenom
)

func (k Kind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindLedger:
		return "ledger"
	case KindDenom:
		return "denom"
	default:
		return "unknown"
	}
}

// FactoryChain identifies which host chain's token factory manages a denom.
type FactoryChain int

const (
	// Osmosis supports a chain-level supply query.
	Osmosis FactoryChain = iota + 1
	// Neutron lacks a supply query, so supply is tracked locally.
	Neutron
)

func (c FactoryChain) String() string {
	switch c {
	case Osmosis:
		return "osmosis"
	case Neutron:
		return "neutron"
	default:
		return "unknown"
	}
}

// Identity is the value that uniquely names a token backend instance. The set
// of identities is closed: an identity is a ContractIdentity, a
// LedgerIdentity, or a DenomIdentity.
type Identity interface {
	Kind() Kind
	String() string
	isIdentity()
}

// ContractIdentity names a delegated fungible-token contract by its address.
// Immutable once created.
type ContractIdentity struct {
	Address string
}

// LedgerIdentity is the identity of a ledger token. The hosting contract's
// storage namespace is the identity; there is no address.
type LedgerIdentity struct{}

// DenomIdentity names a token-factory denom by owner and subdenom.
type DenomIdentity struct {
	Chain FactoryChain
	Denom denom.Denom
}

func (i *ContractIdentity) Kind() Kind { return KindContract }
func (*LedgerIdentity) Kind() Kind     { return KindLedger }
func (i *DenomIdentity) Kind() Kind    { return KindDenom }

func (i *ContractIdentity) String() string { return i.Address }
func (*LedgerIdentity) String() string     { return "ledger" }
func (i *DenomIdentity) String() string    { return i.Denom.String() }

func (*ContractIdentity) isIdentity() {}
func (*LedgerIdentity) isIdentity()   {}
func (*DenomIdentity) isIdentity()    {}

// Token constructs the backend for the identity.
func Token(id Identity) (VaultToken, error) {
	switch id := id.(type) {
	case *ContractIdentity:
		return &Contract{Address: id.Address}, nil
	case *LedgerIdentity:
		return &Ledger{}, nil
	case *DenomIdentity:
		switch id.Chain {
		case Osmosis:
			return &OsmosisDenom{Denom: id.Denom}, nil
		case Neutron:
			return &NeutronDenom{Denom: id.Denom}, nil
		default:
			return nil, errors.InternalError.WithFormat("unknown factory chain %d", id.Chain)
		}
	default:
		return nil, errors.InternalError.WithFormat("unknown identity type %T", id)
	}
}

// storedIdentity is the serialized form of an identity.
type storedIdentity struct {
	Kind    string `json:"kind"`
	Address string `json:"address,omitempty"`
	Chain   string `json:"chain,omitempty"`
	Denom   string `json:"denom,omitempty"`
}

func marshalIdentity(id Identity) ([]byte, error) {
	var s storedIdentity
	switch id := id.(type) {
	case *ContractIdentity:
		s.Kind = KindContract.String()
		s.Address = id.Address
	case *LedgerIdentity:
		s.Kind = KindLedger.String()
	case *DenomIdentity:
		s.Kind = KindDenom.String()
		s.Chain = id.Chain.String()
		s.Denom = id.Denom.String()
	default:
		return nil, errors.InternalError.WithFormat("unknown identity type %T", id)
	}

	b, err := json.Marshal(&s)
	return b, errors.EncodingError.Wrap(err)
}

func unmarshalIdentity(b []byte) (Identity, error) {
	var s storedIdentity
	err := json.Unmarshal(b, &s)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}

	switch s.Kind {
	case KindContract.String():
		return &ContractIdentity{Address: s.Address}, nil
	case KindLedger.String():
		return &LedgerIdentity{}, nil
	case KindDenom.String():
		d, err := denom.Parse(s.Denom)
		if err != nil {
			return nil, err
		}
		var chain FactoryChain
		switch s.Chain {
		case Osmosis.String():
			chain = Osmosis
		case Neutron.String():
			chain = Neutron
		default:
			return nil, errors.EncodingError.WithFormat("unknown factory chain %q", s.Chain)
		}
		return &DenomIdentity{Chain: chain, Denom: d}, nil
	default:
		return nil, errors.EncodingError.WithFormat("unknown identity kind %q", s.Kind)
	}
}
