// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "gitlab.com/accumulatenetwork/vault-token/pkg/errors"

// Attribute is a key-value pair within an event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attr constructs an attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Event is a structured record emitted during execution: a type string plus
// an ordered list of attributes.
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// NewEvent constructs an event.
func NewEvent(typ string, attrs ...Attribute) Event {
	return Event{Type: typ, Attributes: attrs}
}

// Attribute returns the value of the named attribute, if present.
func (e *Event) Attribute(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// FindEvent returns the first event of the given type, if present.
func FindEvent(events []Event, typ string) (*Event, bool) {
	for i := range events {
		if events[i].Type == typ {
			return &events[i], true
		}
	}
	return nil, false
}

// SubMsgResult is the outcome of a sub-message, delivered by the host via a
// reply. Err is non-empty iff the sub-message failed. Events are the events
// emitted during the sub-message's execution.
type SubMsgResult struct {
	Err    string  `json:"error,omitempty"`
	Events []Event `json:"events,omitempty"`
}

// Reply is a correlated callback from the host carrying a sub-message result.
type Reply struct {
	ID     uint64       `json:"id"`
	Result SubMsgResult `json:"result"`
}

// Unwrap returns the result's events, or the host's failure reason verbatim
// if the sub-message failed.
func (r *Reply) Unwrap() ([]Event, error) {
	if r.Result.Err != "" {
		return nil, errors.UnknownError.With(r.Result.Err)
	}
	return r.Result.Events, nil
}

// EventAttribute locates an event of the given type and the named attribute
// within it. The absence of either is a protocol violation, not a silent
// default.
func EventAttribute(events []Event, typ, key string) (string, error) {
	ev, ok := FindEvent(events, typ)
	if !ok {
		return "", errors.ProtocolViolation.WithFormat("cannot find `%s` event", typ)
	}
	v, ok := ev.Attribute(key)
	if !ok {
		return "", errors.ProtocolViolation.WithFormat("cannot find `%s` attribute of `%s` event", key, typ)
	}
	return v, nil
}
