// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"github.com/cosmos/gogoproto/proto"
	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
)

// Type URLs of the token-factory module messages. Neutron's token factory is
// a fork of the Osmosis module and keeps the Osmosis message namespace, so
// both host variants share these.
const (
	TypeURLCreateDenom = "/osmosis.tokenfactory.v1beta1.MsgCreateDenom"
	TypeURLMint        = "/osmosis.tokenfactory.v1beta1.MsgMint"
	TypeURLBurn        = "/osmosis.tokenfactory.v1beta1.MsgBurn"
)

// ProtoCoin is the cosmos.base.v1beta1.Coin message. The amount is a decimal
// string on the wire.
type ProtoCoin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ProtoCoin) Reset()         { *m = ProtoCoin{} }
func (m *ProtoCoin) String() string { return proto.CompactTextString(m) }
func (*ProtoCoin) ProtoMessage()    {}

// MsgCreateDenom asks the token factory to create `factory/{sender}/{subdenom}`.
type MsgCreateDenom struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Subdenom string `protobuf:"bytes,2,opt,name=subdenom,proto3" json:"subdenom,omitempty"`
}

func (m *MsgCreateDenom) Reset()         { *m = MsgCreateDenom{} }
func (m *MsgCreateDenom) String() string { return proto.CompactTextString(m) }
func (*MsgCreateDenom) ProtoMessage()    {}

// MsgMint mints factory coins to the sender's account.
type MsgMint struct {
	Sender string     `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Amount *ProtoCoin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MsgMint) Reset()         { *m = MsgMint{} }
func (m *MsgMint) String() string { return proto.CompactTextString(m) }
func (*MsgMint) ProtoMessage()    {}

// MsgBurn burns factory coins from the sender's account.
type MsgBurn struct {
	Sender string     `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Amount *ProtoCoin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MsgBurn) Reset()         { *m = MsgBurn{} }
func (m *MsgBurn) String() string { return proto.CompactTextString(m) }
func (*MsgBurn) ProtoMessage()    {}

// EncodeModuleMsg marshals a module message and wraps it with its type URL.
func EncodeModuleMsg(typeURL string, m proto.Message) (*ModuleMsg, error) {
	b, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("marshal %s: %w", typeURL, err)
	}
	return &ModuleMsg{TypeURL: typeURL, Value: b}, nil
}
