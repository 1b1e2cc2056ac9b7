// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package denom

import (
	"fmt"

	"gitlab.com/accumulatenetwork/vault-token/pkg/errors"
)

// ErrWrongSegmentCount means a denom did not have exactly three segments.
var ErrWrongSegmentCount = errors.New("wrong segment count")

// ErrWrongPrefix means a denom's first segment was not `factory`.
var ErrWrongPrefix = errors.New("wrong prefix")

// ErrMissingOwner means a denom's owner segment was empty.
var ErrMissingOwner = errors.New("missing owner")

// ErrMissingSubdenom means a denom's subdenom segment was empty.
var ErrMissingSubdenom = errors.New("missing subdenom")

func wrongSegmentCount(s string) error {
	return errors.ValidationError.Wrap(fmt.Errorf("%w in denom %q", ErrWrongSegmentCount, s))
}

func wrongPrefix(s string) error {
	return errors.ValidationError.Wrap(fmt.Errorf("%w in denom %q", ErrWrongPrefix, s))
}

func missingOwner(s string) error {
	return errors.ValidationError.Wrap(fmt.Errorf("%w in denom %q", ErrMissingOwner, s))
}

func missingSubdenom(s string) error {
	return errors.ValidationError.Wrap(fmt.Errorf("%w in denom %q", ErrMissingSubdenom, s))
}
