// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

// Package table classifies the columns of a tab-separated coordinate table
// and maps every row through the coord engine, preserving row order and
// 1:1 input/output correspondence.
package table

import (
	"errors"
	"strings"

	"github.com/jcodagnone/rumbo/coord"
)

// Order of the axes inside a two-column or combined layout.
type Order int

const (
	// LatFirst latitude before longitude. The default when nothing says otherwise.
	LatFirst Order = iota
	// LonFirst longitude before latitude.
	LonFirst
)

// Kind of column layout.
type Kind int

const (
	// TwoColumn one axis per cell.
	TwoColumn Kind = iota
	// Combined both axes in one whitespace-separated cell.
	Combined
	// SingleAxis one cell holding only the named axis.
	SingleAxis
)

// Layout describes how data rows carry their coordinates. It is derived
// once per input and never changes mid-table.
type Layout struct {
	Kind  Kind
	Order Order
	Axis  coord.Axis // meaningful only when Kind is SingleAxis
}

// HasLat reports whether rows under this layout carry a latitude.
func (l Layout) HasLat() bool {
	return l.Kind != SingleAxis || l.Axis == coord.Latitude
}

// HasLon reports whether rows under this layout carry a longitude.
func (l Layout) HasLon() bool {
	return l.Kind != SingleAxis || l.Axis == coord.Longitude
}

// singleAxisLabels contains the recognized single-axis header labels.
var singleAxisLabels = map[string]coord.Axis{
	"lat":       coord.Latitude,
	"latitude":  coord.Latitude,
	"lon":       coord.Longitude,
	"longitude": coord.Longitude,
}

// combinedLabels contains the recognized combined-column header labels. The
// term ordering inside the label encodes the order inside the cell.
var combinedLabels = map[string]Order{
	"latlon":  LatFirst,
	"lat-lon": LatFirst,
	"lonlat":  LonFirst,
	"lon-lat": LonFirst,
}

// Classify decides the column layout from the first line's cells. The
// second return value reports whether the cells were recognized as a header;
// when false, the line is data and the layout was inferred from cell count
// alone.
func Classify(first []string) (Layout, bool) {
	switch len(first) {
	case 1:
		label := strings.ToLower(strings.TrimSpace(first[0]))

		if order, ok := combinedLabels[label]; ok {
			return Layout{Kind: Combined, Order: order}, true
		}

		if axis, ok := singleAxisLabels[label]; ok {
			return Layout{Kind: SingleAxis, Axis: axis}, true
		}
	case 2:
		a, okA := singleAxisLabels[strings.ToLower(strings.TrimSpace(first[0]))]
		b, okB := singleAxisLabels[strings.ToLower(strings.TrimSpace(first[1]))]

		if okA && okB && a != b {
			order := LatFirst
			if a == coord.Longitude {
				order = LonFirst
			}

			return Layout{Kind: TwoColumn, Order: order}, true
		}
	}

	return Infer(len(first)), false
}

// Infer derives a layout from cell count alone: one cell is a combined
// "lat lon" pair, two cells are latitude then longitude.
func Infer(cellCount int) Layout {
	if cellCount == 1 {
		return Layout{Kind: Combined, Order: LatFirst}
	}

	return Layout{Kind: TwoColumn, Order: LatFirst}
}

// ErrMalformedRow reports a row whose cell count does not fit the layout,
// or a combined cell that does not split into exactly two fields.
var ErrMalformedRow = errors.New("malformed row")

// Split maps one data row's cells to (latitudeText, longitudeText) per the
// layout. An absent axis in a single-axis layout yields the empty string.
func Split(layout Layout, cells []string) (latText, lonText string, err error) {
	switch layout.Kind {
	case TwoColumn:
		if len(cells) != 2 {
			return "", "", ErrMalformedRow
		}

		if layout.Order == LonFirst {
			return cells[1], cells[0], nil
		}

		return cells[0], cells[1], nil
	case Combined:
		if len(cells) != 1 {
			return "", "", ErrMalformedRow
		}

		fields := strings.Fields(cells[0])
		if len(fields) != 2 {
			return "", "", ErrMalformedRow
		}

		// Tolerate "45.5, -122.3": the pair separator comma sticks to the
		// first field after whitespace splitting.
		fields[0] = strings.TrimSuffix(fields[0], ",")

		if layout.Order == LonFirst {
			return fields[1], fields[0], nil
		}

		return fields[0], fields[1], nil
	default: // SingleAxis
		if len(cells) != 1 {
			return "", "", ErrMalformedRow
		}

		if layout.Axis == coord.Longitude {
			return "", cells[0], nil
		}

		return cells[0], "", nil
	}
}
