// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package coord

import (
	"errors"
	"fmt"
)

// Reason classifies why a token could not be parsed into an Angle.
type Reason int

const (
	// ReasonUnparsable the token matches none of the accepted surface forms.
	ReasonUnparsable Reason = iota
	// ReasonOutOfRange the resolved value falls outside the axis range.
	ReasonOutOfRange
	// ReasonConflictingSign both an explicit sign and a hemisphere letter are present.
	ReasonConflictingSign
	// ReasonInvalidComponent a DMS/DM component is out of bounds or non-integral degrees.
	ReasonInvalidComponent
)

// String returns the marker word used in output tables for this reason.
func (r Reason) String() string {
	switch r {
	case ReasonOutOfRange:
		return "out-of-range"
	case ReasonConflictingSign:
		return "conflicting-sign"
	case ReasonInvalidComponent:
		return "invalid-component"
	default:
		return "unparsable"
	}
}

// ParseError reports a single token that could not become an Angle.
// It carries the original token so callers can echo it back to the user.
type ParseError struct {
	Reason Reason
	Axis   Axis
	Token  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q as %s: %s", e.Token, e.Axis, e.Reason)
}

// ReasonOf extracts the failure reason from an error returned by Parse.
func ReasonOf(err error) (Reason, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}

	return 0, false
}

// IsOutOfRange verifies if the error is a range validation failure.
func IsOutOfRange(err error) bool {
	r, ok := ReasonOf(err)

	return ok && r == ReasonOutOfRange
}

// IsConflictingSign verifies if the error is a sign/hemisphere conflict.
func IsConflictingSign(err error) bool {
	r, ok := ReasonOf(err)

	return ok && r == ReasonConflictingSign
}
