// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "encoding/json"

// MsgType identifies a kind of outbound host message.
type MsgType int

const (
	// MsgTypeExecuteContract is a call to a deployed contract.
	MsgTypeExecuteContract MsgType = iota + 1
	// MsgTypeInstantiateContract deploys a new contract from a stored code ID.
	MsgTypeInstantiateContract
	// MsgTypeBankSend is a plain native value transfer.
	MsgTypeBankSend
	// MsgTypeModule is an opaque message addressed to a host chain module.
	MsgTypeModule
)

func (t MsgType) String() string {
	switch t {
	case MsgTypeExecuteContract:
		return "executeContract"
	case MsgTypeInstantiateContract:
		return "instantiateContract"
	case MsgTypeBankSend:
		return "bankSend"
	case MsgTypeModule:
		return "module"
	default:
		return "unknown"
	}
}

// Msg is an outbound host message. The set of messages is closed: a message
// is an ExecuteContract, an InstantiateContract, a BankSend, or a ModuleMsg.
// The host carries messages out; this module only describes them.
type Msg interface {
	MsgType() MsgType
	isMsg()
}

// ExecuteContract calls a deployed contract with a JSON payload.
type ExecuteContract struct {
	Contract string          `json:"contract"`
	Payload  json.RawMessage `json:"payload"`
	Funds    []Coin          `json:"funds,omitempty"`
}

// InstantiateContract deploys a new contract instance. The address assigned
// by the host is not known until the host replies.
type InstantiateContract struct {
	CodeID  uint64          `json:"code_id"`
	Label   string          `json:"label"`
	Admin   string          `json:"admin,omitempty"`
	Payload json.RawMessage `json:"payload"`
	Funds   []Coin          `json:"funds,omitempty"`
}

// BankSend transfers native coins to an address.
type BankSend struct {
	ToAddress string `json:"to_address"`
	Amount    []Coin `json:"amount"`
}

// ModuleMsg is a protobuf-encoded message addressed to a host chain module,
// identified by its type URL. The payload is opaque to the host interface.
type ModuleMsg struct {
	TypeURL string `json:"type_url"`
	Value   []byte `json:"value"`
}

func (*ExecuteContract) MsgType() MsgType     { return MsgTypeExecuteContract }
func (*InstantiateContract) MsgType() MsgType { return MsgTypeInstantiateContract }
func (*BankSend) MsgType() MsgType            { return MsgTypeBankSend }
func (*ModuleMsg) MsgType() MsgType           { return MsgTypeModule }

func (*ExecuteContract) isMsg()     {}
func (*InstantiateContract) isMsg() {}
func (*BankSend) isMsg()            {}
func (*ModuleMsg) isMsg()           {}

// ReplyOn controls whether the host must deliver a reply for a sub-message.
type ReplyOn int

const (
	// ReplyNever requests no reply.
	ReplyNever ReplyOn = iota
	// ReplyAlways requests a reply whether the sub-message succeeds or fails.
	ReplyAlways
)

// SubMsg is a host message plus reply-delivery semantics. The ID correlates
// the eventual reply with the request that produced it.
type SubMsg struct {
	ID      uint64  `json:"id,omitempty"`
	Msg     Msg     `json:"msg"`
	ReplyOn ReplyOn `json:"reply_on"`
}

// NewSubMsg wraps a message with no reply requested.
func NewSubMsg(msg Msg) SubMsg {
	return SubMsg{Msg: msg, ReplyOn: ReplyNever}
}

// ReplyAlwaysOn wraps a message, tagging it with the correlation ID and
// requesting a reply regardless of the outcome.
func ReplyAlwaysOn(id uint64, msg Msg) SubMsg {
	return SubMsg{ID: id, Msg: msg, ReplyOn: ReplyAlways}
}
