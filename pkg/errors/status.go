// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "strconv"

// Status is a closed set of error conditions. Statuses below 400 indicate
// success. Statuses in the 400s indicate a caller or protocol error. Statuses
// in the 500s indicate an internal failure.
type Status uint64

const (
	// OK indicates the operation succeeded.
	OK Status = 200

	// BadRequest means the caller's request was malformed.
	BadRequest Status = 400

	// Unauthorized means the caller lacks the required role for a gated
	// operation.
	Unauthorized Status = 403

	// NotFound means the requested record does not exist.
	NotFound Status = 404

	// NotSupported means the operation was invoked on a backend that
	// structurally cannot perform it.
	NotSupported Status = 405

	// AmountMismatch means the attached or available amount differs from the
	// required amount.
	AmountMismatch Status = 406

	// Conflict means the operation conflicts with outstanding state, such as
	// an instantiation that is still awaiting its reply.
	Conflict Status = 409

	// InvalidReplyID means a reply arrived with a correlation ID the handler
	// does not recognize.
	InvalidReplyID Status = 421

	// ProtocolViolation means the host's reply is missing an expected event
	// or attribute.
	ProtocolViolation Status = 422

	// ValidationError means a value failed a format rule, such as address
	// validation or the factory denom shape.
	ValidationError Status = 423

	// ArithmeticError means a checked arithmetic operation overflowed or
	// underflowed.
	ArithmeticError Status = 424

	// InternalError means something has gone wrong internally.
	InternalError Status = 500

	// UnknownError means an unknown error occurred.
	UnknownError Status = 501

	// EncodingError means a payload could not be encoded or decoded.
	EncodingError Status = 502
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 400 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not found"
	case NotSupported:
		return "not supported"
	case AmountMismatch:
		return "amount mismatch"
	case Conflict:
		return "conflict"
	case InvalidReplyID:
		return "invalid reply id"
	case ProtocolViolation:
		return "protocol violation"
	case ValidationError:
		return "validation error"
	case ArithmeticError:
		return "arithmetic error"
	case InternalError:
		return "internal error"
	case UnknownError:
		return "unknown error"
	case EncodingError:
		return "encoding error"
	default:
		return "status " + strconv.FormatUint(uint64(s), 10)
	}
}
