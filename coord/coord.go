// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

// Package coord parses free-form latitude/longitude text into validated
// angles and renders them into the standard output forms.
package coord

import (
	"regexp"
	"strconv"
	"strings"
)

// Axis identifies which coordinate an angle represents.
type Axis int

const (
	// Latitude north/south axis, range [-90, 90].
	Latitude Axis = iota
	// Longitude east/west axis, range [-180, 180].
	Longitude
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Longitude {
		return "longitude"
	}

	return "latitude"
}

// Max returns the inclusive bound of the axis range.
func (a Axis) Max() float64 {
	if a == Longitude {
		return 180
	}

	return 90
}

// hemiLetter returns the rendering hemisphere letter for the axis. The zero
// value maps to the positive hemisphere.
func (a Axis) hemiLetter(negative bool) byte {
	if a == Longitude {
		if negative {
			return 'W'
		}

		return 'E'
	}

	if negative {
		return 'S'
	}

	return 'N'
}

// ownsHemi reports whether a (folded, lowercase) hemisphere letter belongs
// to this axis.
func (a Axis) ownsHemi(c byte) bool {
	if a == Longitude {
		return c == 'e' || c == 'w'
	}

	return c == 'n' || c == 's'
}

// Angle is a validated coordinate value. It is only ever built by Parse, so
// Degrees is guaranteed to be within the axis range.
type Angle struct {
	Axis    Axis
	Degrees float64
	Source  string // original token as given by the caller, trimmed
}

// The accepted surface forms, tried in order against the whole canonicalized
// token. The first expression that matches decides the verdict; a match that
// fails validation is a parse failure, not a fallthrough.
var (
	reDecimal     = regexp.MustCompile(`^([+-])?(\d+(?:\.\d+)?)$`)
	reDecimalHemi = regexp.MustCompile(`^([+-])?(\d+(?:\.\d+)?)\s*°?\s*([nsew])$`)
	reDMS         = regexp.MustCompile(`^([+-])?(\d+(?:\.\d+)?)(?:\s*°\s*|\s+)(\d+(?:\.\d+)?)(?:\s*'\s*|\s+)(\d+(?:\.\d+)?)\s*″?\s*([nsew])?$`)
	reDM          = regexp.MustCompile(`^([+-])?(\d+(?:\.\d+)?)(?:\s*°\s*|\s+)(\d+(?:\.\d+)?)\s*'?\s*([nsew])?$`)
)

// Parse converts one raw coordinate token for the given axis into an Angle.
// On failure it returns a *ParseError carrying the reason and the original
// token; it never panics and never returns a partially filled Angle.
func Parse(token string, axis Axis) (Angle, error) {
	src := strings.TrimSpace(token)

	fail := func(r Reason) (Angle, error) {
		return Angle{}, &ParseError{Reason: r, Axis: axis, Token: src}
	}

	if src == "" {
		return fail(ReasonUnparsable)
	}

	t := prepare(src)

	if m := reDecimal.FindStringSubmatch(t); m != nil {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return fail(ReasonUnparsable)
		}

		if m[1] == "-" {
			v = -v
		}

		return finish(axis, v, src)
	}

	if m := reDecimalHemi.FindStringSubmatch(t); m != nil {
		if m[1] != "" {
			return fail(ReasonConflictingSign)
		}

		hemi := m[3][0]
		if !axis.ownsHemi(hemi) {
			return fail(ReasonUnparsable)
		}

		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return fail(ReasonUnparsable)
		}

		if hemi == 's' || hemi == 'w' {
			v = -v
		}

		return finish(axis, v, src)
	}

	if m := reDMS.FindStringSubmatch(t); m != nil {
		return parseSexagesimal(axis, src, m[1], m[2], m[3], m[4], m[5])
	}

	if m := reDM.FindStringSubmatch(t); m != nil {
		return parseSexagesimal(axis, src, m[1], m[2], m[3], "", m[4])
	}

	return fail(ReasonUnparsable)
}

// parseSexagesimal resolves the shared DMS/DM validation: sign vs.
// hemisphere, integral degrees, minute/second bounds, and range. An empty
// sec means the DM form.
func parseSexagesimal(axis Axis, src, sign, deg, min, sec, hemi string) (Angle, error) {
	fail := func(r Reason) (Angle, error) {
		return Angle{}, &ParseError{Reason: r, Axis: axis, Token: src}
	}

	if sign != "" && hemi != "" {
		return fail(ReasonConflictingSign)
	}

	if hemi != "" && !axis.ownsHemi(hemi[0]) {
		return fail(ReasonUnparsable)
	}

	// The degrees portion must be a non-negative integer before sign or
	// hemisphere application.
	if strings.Contains(deg, ".") {
		return fail(ReasonInvalidComponent)
	}

	d, err := strconv.ParseFloat(deg, 64)
	if err != nil {
		return fail(ReasonUnparsable)
	}

	m, err := strconv.ParseFloat(min, 64)
	if err != nil {
		return fail(ReasonUnparsable)
	}

	if m < 0 || m >= 60 {
		return fail(ReasonInvalidComponent)
	}

	v := d + m/60

	if sec != "" {
		s, err := strconv.ParseFloat(sec, 64)
		if err != nil {
			return fail(ReasonUnparsable)
		}

		if s < 0 || s >= 60 {
			return fail(ReasonInvalidComponent)
		}

		v += s / 3600
	}

	negative := sign == "-" || hemi == "s" || hemi == "w"
	if negative {
		v = -v
	}

	return finish(axis, v, src)
}

// finish applies range validation and builds the Angle.
func finish(axis Axis, v float64, src string) (Angle, error) {
	if v < -axis.Max() || v > axis.Max() {
		return Angle{}, &ParseError{Reason: ReasonOutOfRange, Axis: axis, Token: src}
	}

	return Angle{Axis: axis, Degrees: v, Source: src}, nil
}
