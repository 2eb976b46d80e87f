// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertTwoColumnWithHeader(t *testing.T) {
	lines := []string{
		"lat\tlon",
		"45.5\t-122.3",
		"abc\t-122.3",
	}

	want := []string{
		"lat\tlon",
		"45.5\t-122.3\t45.500000\t45.500000N\t45°30'0.00\"N\t45°30.0000'N\t-122.300000\t122.300000W\t122°18'0.00\"W\t122°18.0000'W",
		"abc\t-122.3\t#PARSE_ERROR:unparsable\t-122.300000\t122.300000W\t122°18'0.00\"W\t122°18.0000'W",
	}

	res := Convert(lines, Options{MaxProcs: 1})

	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}

	if res.Rows != 2 {
		t.Fatalf("rows: want 2, got %d", res.Rows)
	}

	if res.Failed != 1 {
		t.Fatalf("failed: want 1, got %d", res.Failed)
	}
}

func TestConvertCombinedLonLat(t *testing.T) {
	lines := []string{
		"lonlat",
		"-122.3 45.5",
	}

	res := Convert(lines, Options{MaxProcs: 1})

	want := []string{
		"lonlat",
		"-122.3 45.5\t45.500000\t45.500000N\t45°30'0.00\"N\t45°30.0000'N\t-122.300000\t122.300000W\t122°18'0.00\"W\t122°18.0000'W",
	}

	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertMalformedRow(t *testing.T) {
	lines := []string{
		"latlon",
		"45.5 N extra",
		"45.5 -122.3",
	}

	res := Convert(lines, Options{MaxProcs: 1})

	if got := res.Lines[1]; got != "45.5 N extra\t#PARSE_ERROR:malformed-row" {
		t.Fatalf("malformed row output: got %q", got)
	}

	// The batch keeps going: the next row still converts.
	if !strings.Contains(res.Lines[2], "45.500000") {
		t.Fatalf("row after malformed one did not convert: %q", res.Lines[2])
	}

	if res.Failed != 1 {
		t.Fatalf("failed: want 1, got %d", res.Failed)
	}
}

func TestConvertSingleAxis(t *testing.T) {
	lines := []string{
		"longitude",
		"-122.3",
		"181",
	}

	res := Convert(lines, Options{MaxProcs: 1})

	want := []string{
		"longitude",
		"-122.3\t-122.300000\t122.300000W\t122°18'0.00\"W\t122°18.0000'W",
		"181\t#PARSE_ERROR:out-of-range",
	}

	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertHeaderlessData(t *testing.T) {
	// No recognized header: the first line is data.
	lines := []string{"45.5\t-122.3"}

	res := Convert(lines, Options{MaxProcs: 1})

	if res.Rows != 1 {
		t.Fatalf("rows: want 1, got %d", res.Rows)
	}

	if !strings.HasPrefix(res.Lines[0], "45.5\t-122.3\t45.500000") {
		t.Fatalf("first line was not treated as data: %q", res.Lines[0])
	}
}

func TestConvertEmptyInput(t *testing.T) {
	res := Convert(nil, Options{})
	if len(res.Lines) != 0 || res.Rows != 0 || res.Failed != 0 {
		t.Fatalf("empty input must yield an empty result, got %+v", res)
	}

	res = Convert([]string{"lat\tlon"}, Options{})
	if len(res.Lines) != 1 || res.Rows != 0 {
		t.Fatalf("header-only input must echo the header only, got %+v", res)
	}
}

func TestConvertH3Column(t *testing.T) {
	lines := []string{
		"lat\tlon",
		"45.5\t-122.3",
		"abc\t-122.3",
	}

	res := Convert(lines, Options{MaxProcs: 1, H3Resolution: 7})

	cells := strings.Split(res.Lines[1], "\t")
	if len(cells) != 11 {
		t.Fatalf("expected 11 cells with the H3 column, got %d: %q", len(cells), res.Lines[1])
	}

	if cells[10] == "" {
		t.Fatal("h3 cell must not be empty")
	}

	// A row with a failed axis has no point, so no H3 cell either.
	if got := strings.Split(res.Lines[2], "\t"); len(got) != 7 {
		t.Fatalf("failed row must not carry an H3 cell, got %d cells: %q", len(got), res.Lines[2])
	}
}

func TestConvertParallelPreservesOrder(t *testing.T) {
	lines := []string{"lat\tlon"}
	for i := 0; i < 200; i++ {
		lines = append(lines, fmt.Sprintf("%d.5\t-%d.25", i%89, i%179))
	}

	sequential := Convert(lines, Options{MaxProcs: 1})
	parallel := Convert(lines, Options{MaxProcs: 8})

	if diff := cmp.Diff(sequential.Lines, parallel.Lines); diff != "" {
		t.Fatalf("parallel output differs from sequential (-seq +par):\n%s", diff)
	}

	if sequential.Failed != parallel.Failed {
		t.Fatalf("failed count differs: %d vs %d", sequential.Failed, parallel.Failed)
	}
}

func TestConvertProgress(t *testing.T) {
	lines := []string{
		"lat\tlon",
		"45.5\t-122.3",
		"1\t2",
		"3\t4",
	}

	var done int

	Convert(lines, Options{
		MaxProcs: 1,
		Progress: func(delta int) { done += delta },
	})

	if done != 3 {
		t.Fatalf("progress: want 3 increments, got %d", done)
	}
}
