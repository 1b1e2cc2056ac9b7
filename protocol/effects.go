// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// Effects is the bundle an operation produces: outbound host messages to
// dispatch plus structured events to record. The host carries them out; the
// producing operation performs no side effects of its own.
type Effects struct {
	Messages []SubMsg `json:"messages,omitempty"`
	Events   []Event  `json:"events,omitempty"`
}

// NewEffects returns an empty effect set.
func NewEffects() *Effects { return new(Effects) }

// AddMessage appends a message with no reply requested.
func (e *Effects) AddMessage(msg Msg) *Effects {
	e.Messages = append(e.Messages, NewSubMsg(msg))
	return e
}

// AddSubMsg appends a sub-message.
func (e *Effects) AddSubMsg(sub SubMsg) *Effects {
	e.Messages = append(e.Messages, sub)
	return e
}

// AddEvent appends an event.
func (e *Effects) AddEvent(ev Event) *Effects {
	e.Events = append(e.Events, ev)
	return e
}

// IsEmpty reports whether the effect set carries no messages and no events.
func (e *Effects) IsEmpty() bool {
	return len(e.Messages) == 0 && len(e.Events) == 0
}

// ExecContext describes a single entry into the contract: the contract's own
// address, the invoking identity, and any native funds attached to the call.
type ExecContext struct {
	Contract string
	Sender   string
	Funds    []Coin
}

// AddressValidator validates a human-readable address against the host's
// rules. The host provides the implementation.
type AddressValidator func(string) error
