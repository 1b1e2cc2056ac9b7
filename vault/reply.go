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

// Correlation IDs reserved for creation sub-requests, one per backend kind
// that needs asynchronous identity resolution. The IDs are fixed so hosts can
// route replies by constant; exclusion between overlapping instantiations is
// provided by the pending record, not by the ID.
const (
	// ReplyIDDenomCreated tags the token factory's create-denom sub-request.
	ReplyIDDenomCreated uint64 = 14508
	// ReplyIDContractCreated tags the delegated contract's instantiate
	// sub-request.
	ReplyIDContractCreated uint64 = 14509
)

// Event and attribute names the host emits during creation, and the
// confirmation event this module emits once an identity is finalized.
const (
	EventTypeCreateDenom    = "create_denom"
	AttrKeyNewTokenDenom    = "new_token_denom"
	EventTypeInstantiate    = "instantiate"
	AttrKeyContractAddress  = "_contract_address"
	EventTypeTokenFinalized = "vault_token_finalized"
	AttrKeyToken            = "token"
)

// HandleReply resumes a suspended instantiation. The host calls this with
// every reply it delivers to the contract; replies that do not match the
// outstanding creation sub-request fail with an invalid-reply-id error and
// touch nothing.
//
// On a matching reply, HandleReply unwraps the sub-request's result,
// surfacing the host's failure reason verbatim if it failed; extracts the
// newly assigned identity from the designated host event; validates it; and
// persists it into the identity slot, overwriting any prior value. Failures
// after correlation clear the pending record but leave the identity slot
// untouched, so re-invoking Instantiate is the recovery path.
func HandleReply(st *State, validate protocol.AddressValidator, reply *protocol.Reply) (*protocol.Effects, error) {
	pending, err := st.LoadPending()
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, errors.NotFound):
		return nil, errors.InvalidReplyID.WithFormat("no instantiation is awaiting reply %d", reply.ID)
	default:
		return nil, err
	}

	if reply.ID != pending.ReplyID {
		return nil, errors.InvalidReplyID.WithFormat("want reply %d, got %d", pending.ReplyID, reply.ID)
	}

	id, err := resolveIdentity(pending, validate, reply)
	if err != nil {
		// The identity slot is untouched. Consume the pending record so the
		// caller can retry by re-invoking Instantiate.
		_ = st.ClearPending()
		return nil, err
	}

	err = st.SaveIdentity(id)
	if err != nil {
		return nil, err
	}
	err = st.ClearPending()
	if err != nil {
		return nil, err
	}

	st.logger.Info().Str("token", id.String()).Msg("Finalized token identity")
	return protocol.NewEffects().AddEvent(protocol.NewEvent(EventTypeTokenFinalized,
		protocol.Attr("action", "save_token"),
		protocol.Attr(AttrKeyToken, id.String()),
	)), nil
}

func resolveIdentity(pending *PendingInstantiation, validate protocol.AddressValidator, reply *protocol.Reply) (Identity, error) {
	events, err := reply.Unwrap()
	if err != nil {
		return nil, err
	}

	switch pending.Kind {
	case KindContract.String():
		addr, err := protocol.EventAttribute(events, EventTypeInstantiate, AttrKeyContractAddress)
		if err != nil {
			return nil, err
		}
		if validate != nil {
			err = validate(addr)
			if err != nil {
				return nil, errors.ValidationError.WithFormat("contract address %q: %w", addr, err)
			}
		}
		return &ContractIdentity{Address: addr}, nil

	case KindDenom.String():
		value, err := protocol.EventAttribute(events, EventTypeCreateDenom, AttrKeyNewTokenDenom)
		if err != nil {
			return nil, err
		}
		d, err := denom.Parse(value)
		if err != nil {
			return nil, err
		}
		if d.Owner != pending.Owner || d.Subdenom != pending.Subdenom {
			return nil, errors.ProtocolViolation.WithFormat("created denom %q does not match requested factory/%s/%s", d, pending.Owner, pending.Subdenom)
		}

		switch pending.Chain {
		case Osmosis.String():
			return &DenomIdentity{Chain: Osmosis, Denom: d}, nil
		case Neutron.String():
			return &DenomIdentity{Chain: Neutron, Denom: d}, nil
		default:
			return nil, errors.InternalError.WithFormat("pending record names unknown chain %q", pending.Chain)
		}

	default:
		return nil, errors.InternalError.WithFormat("pending record names unknown kind %q", pending.Kind)
	}
}
