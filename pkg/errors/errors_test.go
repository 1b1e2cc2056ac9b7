// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusMatching(t *testing.T) {
	err := NotFound.WithFormat("%v not found", "token/identity")
	require.True(t, Is(err, NotFound))
	require.False(t, Is(err, EncodingError))
	require.Equal(t, NotFound, Code(err))
}

func TestWrapPreservesCode(t *testing.T) {
	inner := ArithmeticError.With("subtraction underflow")
	outer := UnknownError.Wrap(inner)
	require.True(t, Is(outer, ArithmeticError))
	require.Equal(t, ArithmeticError, Code(outer))

	// Wrapping with a known code takes precedence
	outer = EncodingError.Wrap(inner)
	require.Equal(t, EncodingError, Code(outer))
	require.True(t, Is(outer, ArithmeticError))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, UnknownError.Wrap(nil))
}

func TestWithFormatCause(t *testing.T) {
	cause := New("boom")
	err := InternalError.WithFormat("load state: %w", cause)
	require.True(t, Is(err, cause))
	require.Equal(t, "load state: boom", err.Error())
}

func TestCode(t *testing.T) {
	cases := []struct {
		err    error
		expect Status
	}{
		{nil, OK},
		{BadRequest.With("nope"), BadRequest},
		{fmt.Errorf("wrapped: %w", Conflict.With("pending")), Conflict},
		{New("anonymous"), UnknownError},
	}
	for _, c := range cases {
		t.Run("", func(t *testing.T) {
			require.Equal(t, c.expect, Code(c.err))
		})
	}
}

func TestStatusStrings(t *testing.T) {
	require.Equal(t, "invalid reply id", InvalidReplyID.String())
	require.Equal(t, "amount mismatch", AmountMismatch.String())
	require.Equal(t, "status 999", Status(999).String())
}
