// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package coord

import (
	"fmt"
	"math"
	"strconv"
)

// Rendering precision. Decimal degrees carry six places (~0.11 m), seconds
// two, decimal minutes four. The final digit rounds half to even.
const (
	decimalPlaces = 6
	secondsPlaces = 2
	minutesPlaces = 4
)

// StandardForms holds the fixed set of rendered strings for one Angle, in
// output order: signed decimal degrees, decimal degrees with hemisphere
// letter, degrees-minutes-seconds, degrees-decimal-minutes.
type StandardForms struct {
	Decimal     string `json:"decimal"`
	DecimalHemi string `json:"decimal_hemi"`
	DMS         string `json:"dms"`
	DM          string `json:"dm"`
}

// List returns the forms in their fixed output order.
func (f StandardForms) List() []string {
	return []string{f.Decimal, f.DecimalHemi, f.DMS, f.DM}
}

// Render produces the standard forms for a validated Angle. It is a pure
// function and cannot fail: the value is in range by construction.
func Render(a Angle) StandardForms {
	v := roundEven(a.Degrees, decimalPlaces)
	negative := v < 0
	abs := math.Abs(v)
	hemi := a.Axis.hemiLetter(negative)

	decimal := strconv.FormatFloat(abs, 'f', decimalPlaces, 64)

	signed := decimal
	if negative {
		signed = "-" + decimal
	}

	return StandardForms{
		Decimal:     signed,
		DecimalHemi: decimal + string(hemi),
		DMS:         renderDMS(math.Abs(a.Degrees), hemi),
		DM:          renderDM(math.Abs(a.Degrees), hemi),
	}
}

func renderDMS(abs float64, hemi byte) string {
	d := math.Floor(abs)
	m := math.Floor((abs - d) * 60)
	s := roundEven((abs-d)*3600-m*60, secondsPlaces)

	// Carry after rounding so 59.995″ becomes the next minute, not 60.00″.
	if s >= 60 {
		s -= 60
		m++
	}

	if m >= 60 {
		m -= 60
		d++
	}

	return fmt.Sprintf(`%d°%d'%s"%c`, int(d), int(m),
		strconv.FormatFloat(s, 'f', secondsPlaces, 64), hemi)
}

func renderDM(abs float64, hemi byte) string {
	d := math.Floor(abs)
	m := roundEven((abs-d)*60, minutesPlaces)

	if m >= 60 {
		m -= 60
		d++
	}

	return fmt.Sprintf("%d°%s'%c", int(d),
		strconv.FormatFloat(m, 'f', minutesPlaces, 64), hemi)
}

func roundEven(v float64, places int) float64 {
	p := math.Pow10(places)

	return math.RoundToEven(v*p) / p
}
