// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"runtime"
	"strings"
	"sync"

	"github.com/uber/h3-go/v4"

	"github.com/jcodagnone/rumbo/coord"
)

// MarkerPrefix precedes the failure reason in output cells.
const MarkerPrefix = "#PARSE_ERROR:"

// markerMalformedRow flags rows whose cell count does not fit the layout.
const markerMalformedRow = MarkerPrefix + "malformed-row"

// Options tunes a batch conversion.
type Options struct {
	// H3Resolution, when in [1, 15], appends the H3 cell index of the point
	// as a final column on rows where both axes parsed. 0 disables it.
	H3Resolution int
	// MaxProcs bounds the row workers. 0 means one per CPU, 1 forces
	// sequential processing.
	MaxProcs int
	// Progress, when non-nil, is called with 1 after each processed row.
	// It must be safe for concurrent use when MaxProcs permits parallelism.
	Progress func(delta int)
}

// Result of a batch conversion. Lines correspond 1:1 with the input lines,
// in input order; Failed counts cells that produced an error marker.
type Result struct {
	Lines  []string
	Rows   int
	Failed int
}

// Convert runs the full classify/parse/render pipeline over raw
// tab-separated lines. It never fails: every malformed row or unparsable
// cell is echoed with its marker and processing continues.
func Convert(lines []string, opts Options) *Result {
	res := &Result{}
	if len(lines) == 0 {
		return res
	}

	layout, hasHeader := Classify(strings.Split(lines[0], "\t"))

	data := lines
	if hasHeader {
		// The recognized header is echoed untouched, ahead of the data rows.
		res.Lines = append(res.Lines, lines[0])
		data = lines[1:]
	}

	out := make([]string, len(data))
	failed := make([]int, len(data))

	maxProcs := opts.MaxProcs
	if maxProcs == 0 {
		maxProcs = runtime.NumCPU()
	}

	if maxProcs <= 1 || len(data) < 2 {
		for i, line := range data {
			out[i], failed[i] = convertRow(layout, line, opts.H3Resolution)

			if opts.Progress != nil {
				opts.Progress(1)
			}
		}
	} else {
		// Rows are independent pure work; fan out on a bounded pool and
		// place results by index so output order stays input order.
		var wg sync.WaitGroup

		semaphore := make(chan struct{}, maxProcs)

		for i, line := range data {
			wg.Add(1)

			go func(i int, line string) {
				defer wg.Done()
				semaphore <- struct{}{}

				defer func() { <-semaphore }()

				out[i], failed[i] = convertRow(layout, line, opts.H3Resolution)

				if opts.Progress != nil {
					opts.Progress(1)
				}
			}(i, line)
		}

		wg.Wait()
	}

	res.Lines = append(res.Lines, out...)
	res.Rows = len(data)

	for _, n := range failed {
		res.Failed += n
	}

	return res
}

// convertRow maps one data row to its output line: the original cells, then
// per present axis either the four standard forms or an error marker, then
// the optional H3 cell when both axes parsed.
func convertRow(layout Layout, line string, h3Res int) (string, int) {
	cells := strings.Split(line, "\t")
	out := append(make([]string, 0, len(cells)+9), cells...)

	latText, lonText, err := Split(layout, cells)
	if err != nil {
		return strings.Join(append(out, markerMalformedRow), "\t"), 1
	}

	var failed int

	var lat, lon *coord.Angle

	if layout.HasLat() {
		if a, err := coord.Parse(latText, coord.Latitude); err != nil {
			out = append(out, marker(err))
			failed++
		} else {
			out = append(out, coord.Render(a).List()...)
			lat = &a
		}
	}

	if layout.HasLon() {
		if a, err := coord.Parse(lonText, coord.Longitude); err != nil {
			out = append(out, marker(err))
			failed++
		} else {
			out = append(out, coord.Render(a).List()...)
			lon = &a
		}
	}

	if h3Res >= 1 && h3Res <= 15 && lat != nil && lon != nil {
		cell, err := h3.LatLngToCell(h3.NewLatLng(lat.Degrees, lon.Degrees), h3Res)
		if err == nil {
			out = append(out, cell.String())
		}
	}

	return strings.Join(out, "\t"), failed
}

// marker renders the output cell for a failed parse.
func marker(err error) string {
	if r, ok := coord.ReasonOf(err); ok {
		return MarkerPrefix + r.String()
	}

	return MarkerPrefix + coord.ReasonUnparsable.String()
}
