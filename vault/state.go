// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package vault

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
	"gitlab.com/accumulatenetwork/vault-token/pkg/keyvalue"
	"gitlab.com/accumulatenetwork/vault-token/protocol"
)

// Well-known storage keys. Exactly one token identity is persisted per
// contract instance.
const (
	// KeyIdentity holds the serialized token identity.
	KeyIdentity = "token/identity"
	// KeyPending holds the pending instantiation record while a creation
	// sub-request is awaiting its reply.
	KeyPending = "token/pending"
	// KeySupply holds the locally tracked total supply, for backends whose
	// host lacks a supply query.
	KeySupply = "token/supply"
	// KeyLedgerInfo holds the ledger token's metadata.
	KeyLedgerInfo = "ledger/info"
	// ledgerBalancePrefix prefixes per-holder ledger balances.
	ledgerBalancePrefix = "ledger/balance/"
)

// State is the explicit persistence handle passed into every operation that
// needs it, scoped to the owning contract instance.
type State struct {
	kv     keyvalue.Store
	logger zerolog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the state's logger. The default logger is disabled.
func WithLogger(l zerolog.Logger) Option {
	return func(s *State) { s.logger = l }
}

// NewState wraps a key-value store.
func NewState(kv keyvalue.Store, opt ...Option) *State {
	s := &State{kv: kv, logger: zerolog.Nop()}
	for _, o := range opt {
		o(s)
	}
	return s
}

// LoadIdentity loads the configured token identity. LoadIdentity fails with a
// not-found error if no identity has been saved.
func (s *State) LoadIdentity() (Identity, error) {
	b, err := s.kv.Get(KeyIdentity)
	if err != nil {
		return nil, err
	}
	return unmarshalIdentity(b)
}

// SaveIdentity persists the token identity, overwriting any prior value. The
// write is a single atomic replace.
func (s *State) SaveIdentity(id Identity) error {
	b, err := marshalIdentity(id)
	if err != nil {
		return err
	}
	err = s.kv.Put(KeyIdentity, b)
	if err != nil {
		return err
	}
	s.logger.Debug().Str("token", id.String()).Msg("Saved token identity")
	return nil
}

// Load loads the configured identity and constructs its backend.
func Load(s *State) (VaultToken, error) {
	id, err := s.LoadIdentity()
	if err != nil {
		return nil, err
	}
	return Token(id)
}

// PendingInstantiation is the correlation record written before a creation
// sub-request is dispatched and consumed exactly once when its reply arrives.
// It carries the parameters needed to reconstruct the eventual identity.
type PendingInstantiation struct {
	ReplyID  uint64 `json:"reply_id"`
	Kind     string `json:"kind"`
	Chain    string `json:"chain,omitempty"`
	Owner    string `json:"owner,omitempty"`
	Subdenom string `json:"subdenom,omitempty"`
}

// LoadPending loads the pending instantiation record, or a not-found error if
// none is outstanding.
func (s *State) LoadPending() (*PendingInstantiation, error) {
	b, err := s.kv.Get(KeyPending)
	if err != nil {
		return nil, err
	}
	p := new(PendingInstantiation)
	err = json.Unmarshal(b, p)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}
	return p, nil
}

// SavePending writes the pending instantiation record. SavePending fails with
// a conflict error if a record is already outstanding: at most one creation
// protocol instance may exist at a time.
func (s *State) SavePending(p *PendingInstantiation) error {
	_, err := s.kv.Get(KeyPending)
	switch {
	case err == nil:
		return errors.Conflict.With("an instantiation is already awaiting its reply")
	case !errors.Is(err, errors.NotFound):
		return err
	}

	b, err := json.Marshal(p)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	err = s.kv.Put(KeyPending, b)
	if err != nil {
		return err
	}
	s.logger.Debug().Uint64("reply-id", p.ReplyID).Str("kind", p.Kind).Msg("Recorded pending instantiation")
	return nil
}

// ClearPending removes the pending instantiation record.
func (s *State) ClearPending() error {
	return s.kv.Delete(KeyPending)
}

// LoadSupply returns the locally tracked total supply, or zero if none has
// been recorded.
func (s *State) LoadSupply() (protocol.Amount, error) {
	b, err := s.kv.Get(KeySupply)
	switch {
	case err == nil:
		return protocol.AmountFromString(string(b))
	case errors.Is(err, errors.NotFound):
		return protocol.ZeroAmount(), nil
	default:
		return protocol.Amount{}, err
	}
}

// SaveSupply records the locally tracked total supply.
func (s *State) SaveSupply(a protocol.Amount) error {
	return s.kv.Put(KeySupply, []byte(a.String()))
}

// LedgerInfo is the metadata of a ledger token.
type LedgerInfo struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// LoadLedgerInfo loads the ledger token's metadata.
func (s *State) LoadLedgerInfo() (*LedgerInfo, error) {
	b, err := s.kv.Get(KeyLedgerInfo)
	if err != nil {
		return nil, err
	}
	info := new(LedgerInfo)
	err = json.Unmarshal(b, info)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}
	return info, nil
}

// SaveLedgerInfo persists the ledger token's metadata.
func (s *State) SaveLedgerInfo(info *LedgerInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	return s.kv.Put(KeyLedgerInfo, b)
}

// Balance returns the ledger balance of an address, or zero if the address
// has never held tokens.
func (s *State) Balance(address string) (protocol.Amount, error) {
	b, err := s.kv.Get(ledgerBalancePrefix + address)
	switch {
	case err == nil:
		return protocol.AmountFromString(string(b))
	case errors.Is(err, errors.NotFound):
		return protocol.ZeroAmount(), nil
	default:
		return protocol.Amount{}, err
	}
}

// SetBalance records the ledger balance of an address.
func (s *State) SetBalance(address string, a protocol.Amount) error {
	return s.kv.Put(ledgerBalancePrefix+address, []byte(a.String()))
}
